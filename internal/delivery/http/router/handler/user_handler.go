// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/delivery/http/response"
	"sugarrush/internal/delivery/http/validator"
	"sugarrush/internal/domain/entity"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// updateUserRequest is the PUT /users/:id body. Absent fields are left unchanged.
type updateUserRequest struct {
	PreferredName *string `json:"preferred_name" validate:"omitnil,min=1"`
	PhoneNumber   *string `json:"phone_number" validate:"omitnil,us_phone"`
	Role          *string `json:"role" validate:"omitnil,oneof=admin storeowner inventoryManager driver temporary"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers handles GET /users with optional role and name filters.
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	filter := entity.UserFilter{Name: c.QueryParam("name")}
	if raw := c.QueryParam("role"); raw != "" {
		role, ok := entity.ParseRole(raw)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("role: unknown role " + raw)
		}
		filter.Role = role
	}

	users, err := h.uc.List(c.Request().Context(), actor, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "Users retrieved successfully")
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// UpdateUser handles PUT /users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid user update input", err)
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	input := usecase.UpdateUserInput{
		PreferredName: req.PreferredName,
		PhoneNumber:   req.PhoneNumber,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User updated successfully")
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User successfully deleted")
}

// actorFrom reads the caller attached by the Authenticate middleware.
func actorFrom(c echo.Context) (usecase.Actor, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrForbidden
	}

	return usecase.Actor{UserID: session.UserID, Role: session.Role}, nil
}
