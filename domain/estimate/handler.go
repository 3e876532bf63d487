package estimate

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/pkg/apperror"
)

// Handler serves the JSON API.
type Handler struct {
	svc *Service
}

// NewHandler creates a new estimate handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Options handles GET /api/options
func (h *Handler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, OptionsResponse{
		Fields:        plan.Fields(),
		ExportOptions: share.ExportOptions(),
		Platforms:     share.Platforms(),
	})
}

// Estimate handles POST /api/estimate
func (h *Handler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	est, err := h.svc.Estimate(c.Request().Context(), req.Details(), SourceAPI)
	if err != nil {
		var verr *plan.ValidationError
		if errors.As(err, &verr) {
			details := make(map[string]any, len(verr.Invalid))
			for f, v := range verr.Invalid {
				details[string(f)] = v
			}
			return apperror.ErrValidation.WithMessage(verr.Error()).WithDetails(details)
		}
		return apperror.NewInternal("failed to compute estimate", err)
	}

	summary, err := h.svc.Summary(est)
	if err != nil {
		return apperror.NewInternal("failed to render summary", err)
	}

	return c.JSON(http.StatusOK, EstimateResponse{Estimate: est, Summary: summary})
}

// Share handles GET /api/share/:platform
func (h *Handler) Share(c echo.Context) error {
	intent, err := h.svc.ShareIntent(c.Request().Context(), c.Param("platform"))
	if err != nil {
		if errors.Is(err, share.ErrUnsupportedPlatform) {
			return apperror.ErrUnknownPlatform.WithDetails(map[string]any{
				"platform":  c.Param("platform"),
				"supported": share.Platforms(),
			})
		}
		return apperror.NewInternal("failed to build share intent", err)
	}
	return c.JSON(http.StatusOK, intent)
}

// NotFound answers unknown API paths.
func (h *Handler) NotFound(c echo.Context) error {
	return apperror.ErrNotFound.WithMessage("no API endpoint at " + c.Request().URL.Path)
}
