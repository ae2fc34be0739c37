package controller

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/middleware"
	"github.com/alimikegami/e-commerce/storefront-service/internal/service"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}

	g.POST("/auth/register", c.Register)
	g.POST("/auth/login", c.Login)
	g.GET("/auth/me", c.GetMe, isLoggedIn)
	g.PUT("/auth/me", c.UpdateMe, isLoggedIn)
	g.PUT("/auth/change-password", c.ChangePassword, isLoggedIn)
	g.DELETE("/users/:userId", c.DeleteUser, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "User registered", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Login successful", resp)
}

func (c *UserController) GetMe(e echo.Context) error {
	resp, err := c.service.GetUserByID(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateMe(e echo.Context) error {
	payload := dto.UpdateUserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateMe").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = middleware.UserID(e)

	resp, err := c.service.UpdateUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User updated", resp)
}

func (c *UserController) ChangePassword(e echo.Context) error {
	payload := dto.ChangePasswordRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "ChangePassword").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.UserID = middleware.UserID(e)

	if err := c.service.ChangePassword(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Password changed", nil)
}

// DeleteUser lets users delete their own account. Admins may delete any.
func (c *UserController) DeleteUser(e echo.Context) error {
	ctx := e.Request().Context()
	userID := e.Param("userId")

	if caller := middleware.UserID(e); userID != caller {
		isAdmin, err := c.service.IsAdmin(ctx, caller)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
			return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
		}
		if !isAdmin {
			return response.WriteErrorResponse(e, errs.ErrUnauthorized, nil)
		}
	}

	if err := c.service.DeleteUser(ctx, userID); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User deleted", nil)
}
