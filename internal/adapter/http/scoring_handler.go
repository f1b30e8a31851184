package http

import (
	"errors"
	"net/http"

	"trustchain-backend/internal/infrastructure/model"
	"trustchain-backend/internal/usecase/scoring"

	"github.com/labstack/echo/v4"
)

type ScoringHandler struct{ uc *scoring.Usecase }

func NewScoringHandler(u *scoring.Usecase) *ScoringHandler { return &ScoringHandler{uc: u} }

func (h *ScoringHandler) ScoreFeatures(c echo.Context) error {
	var req scoring.FeatureInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Score(c.Request().Context(), req)
	if err != nil {
		return scoringErrJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// scoringErrJSON maps scoring-path errors: a malformed feature vector is the
// caller's fault, a missing model is an infrastructure outage.
func scoringErrJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, scoring.ErrInvalidFeature):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "scoring model unavailable"})
	default:
		return notFoundOr500(c, err)
	}
}
