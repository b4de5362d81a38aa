package handler

import (
	"net/http"

	"usersvc/internal/users/metrics"
	"usersvc/internal/users/model"
	"usersvc/internal/users/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service   service.UserService
	UploadDir string
	Metrics   *metrics.Metrics
}

func NewUserHandler(s service.UserService, uploadDir string) *UserHandler {
	return &UserHandler{Service: s, UploadDir: uploadDir}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var cand model.CandidateUser
	if err := c.Bind(&cand); err != nil {
		return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.Service.Create(c.Request().Context(), cand)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, model.DataResponse{
		Message: "User created successfully",
		Data:    user,
	})
}

// ListUsers handles GET /api/users with page, limit, search params
func (h *UserHandler) ListUsers(c echo.Context) error {
	var q model.ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Invalid parameters"})
	}

	users, total, err := h.Service.List(c.Request().Context(), q)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.ListResponse{
		Success: true,
		Message: "Users fetched successfully",
		Total:   total,
		Data:    users,
	})
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.Service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.DataResponse{
		Message: "User fetched successfully",
		Data:    user,
	})
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var update model.UserUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.Service.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.DataResponse{
		Message: "User updated successfully",
		Data:    user,
	})
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "User deleted successfully"})
}
