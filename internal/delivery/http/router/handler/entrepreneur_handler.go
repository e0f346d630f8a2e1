package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntrepreneurHandler holds dependencies for entrepreneur handlers.
type EntrepreneurHandler struct {
	uc     usecase.EntrepreneurUsecase
	logger *slog.Logger
}

// NewEntrepreneurHandler is the constructor for EntrepreneurHandler, injected by Fx.
func NewEntrepreneurHandler(uc usecase.EntrepreneurUsecase, logger *slog.Logger) *EntrepreneurHandler {
	return &EntrepreneurHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all entrepreneurs, optionally filtered with ?state=.
func (h *EntrepreneurHandler) List(c echo.Context) error {
	var state *entity.ApprovalState
	if raw := c.QueryParam("state"); raw != "" {
		s := entity.ApprovalState(raw)
		state = &s
	}

	profiles, err := h.uc.List(c.Request().Context(), state)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntrepreneurViews(profiles), "")
}

// Get returns a single entrepreneur by ID.
func (h *EntrepreneurHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entrepreneur id")
	}

	profile, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntrepreneurView(profile), "")
}

// GetByEmail returns a single entrepreneur by the owning account's email.
func (h *EntrepreneurHandler) GetByEmail(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Email is required")
	}

	profile, err := h.uc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntrepreneurView(profile), "")
}

// Transition moves an entrepreneur through the approval state machine.
func (h *EntrepreneurHandler) Transition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entrepreneur id")
	}

	var input usecase.TransitionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	profile, err := h.uc.Transition(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntrepreneurView(profile), "State updated successfully")
}

// Update edits the descriptive profile fields.
func (h *EntrepreneurHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entrepreneur id")
	}

	var input usecase.UpdateEntrepreneurInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntrepreneurView(profile), "Profile updated successfully")
}

// Delete soft-deletes the entrepreneur and its account.
func (h *EntrepreneurHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entrepreneur id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entrepreneur deleted successfully")
}
