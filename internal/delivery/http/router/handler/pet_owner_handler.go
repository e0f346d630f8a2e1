package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PetOwnerHandler holds dependencies for pet owner handlers.
type PetOwnerHandler struct {
	uc     usecase.PetOwnerUsecase
	logger *slog.Logger
}

// NewPetOwnerHandler is the constructor for PetOwnerHandler, injected by Fx.
func NewPetOwnerHandler(uc usecase.PetOwnerUsecase, logger *slog.Logger) *PetOwnerHandler {
	return &PetOwnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the pet owner account for the given account ID.
func (h *PetOwnerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	account, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}

// Update edits the pet owner profile.
func (h *PetOwnerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	var input usecase.UpdatePetOwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	account, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Profile updated successfully")
}

// Delete soft-deletes the pet owner and its account.
func (h *PetOwnerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pet owner deleted successfully")
}
