// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterPetOwner handles the pet owner registration request.
func (h *AuthHandler) RegisterPetOwner(c echo.Context) error {
	var input usecase.RegisterPetOwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterPetOwner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account), "Pet owner registered successfully")
}

// RegisterEntrepreneur handles the entrepreneur registration request.
func (h *AuthHandler) RegisterEntrepreneur(c echo.Context) error {
	var input usecase.RegisterEntrepreneurInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterEntrepreneur(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account), "Entrepreneur registered successfully")
}

// Login handles the login request for the role named in the path.
func (h *AuthHandler) Login(c echo.Context) error {
	role := entity.Role(c.Param("role"))
	if !role.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown login role")
	}

	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), role, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// VerifyToken checks a token and returns the identity it carries.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify input")
	}

	identity, err := h.uc.VerifyToken(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"accountId": identity.AccountID.String(),
		"email":     identity.Email,
	}, "Token is valid")
}
