package http

import (
	"net/http"

	uc "trustchain-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{ uc *uc.Usecase }

func NewStatsHandler(u *uc.Usecase) *StatsHandler { return &StatsHandler{uc: u} }

func (h *StatsHandler) GlobalStats(c echo.Context) error {
	out, err := h.uc.Global(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) RegionStats(c echo.Context) error {
	out, err := h.uc.Regions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}
