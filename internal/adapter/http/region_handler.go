package http

import (
	"errors"
	"net/http"

	regionDomain "trustchain-backend/internal/domain/region"
	uc "trustchain-backend/internal/usecase/region"

	"github.com/labstack/echo/v4"
)

type RegionHandler struct{ uc *uc.Usecase }

func NewRegionHandler(u *uc.Usecase) *RegionHandler { return &RegionHandler{uc: u} }

// DeleteRegion removes a region; its borrowers survive with a cleared
// region reference.
func (h *RegionHandler) DeleteRegion(c echo.Context) error {
	regionID, ok := pathID(c, "region_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "region_id must be a positive integer"})
	}
	if err := h.uc.Delete(c.Request().Context(), regionID); err != nil {
		if errors.Is(err, regionDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}
