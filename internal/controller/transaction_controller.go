package controller

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/middleware"
	"github.com/alimikegami/e-commerce/storefront-service/internal/service"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type TransactionController struct {
	service service.TransactionService
}

func CreateTransactionController(g *echo.Group, service service.TransactionService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := TransactionController{
		service: service,
	}

	g.POST("/transactions/notifications", c.PaymentNotification)

	g.POST("/transactions", c.AddTransaction, isLoggedIn)
	g.GET("/transactions", c.GetTransactions, isLoggedIn, isAdmin)
	g.GET("/transactions/:id", c.GetTransactionByID, isLoggedIn)
	g.GET("/users/:userId/transactions", c.GetTransactionsByUserID, isLoggedIn)
	g.DELETE("/transactions/:id", c.DeleteTransaction, isLoggedIn)
	g.PUT("/transactions/:id/status", c.UpdateTransactionStatus, isLoggedIn, isAdmin)
	g.POST("/transactions/:id/sync", c.SyncTransactionStatus, isLoggedIn, isAdmin)
}

func (c *TransactionController) AddTransaction(e echo.Context) error {
	payload := dto.TransactionRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddTransaction").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.UserID = middleware.UserID(e)

	resp, err := c.service.AddTransaction(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Transaction created", resp)
}

func (c *TransactionController) GetTransactions(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetTransactions(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved transactions", resp)
}

func (c *TransactionController) GetTransactionByID(e echo.Context) error {
	resp, err := c.service.GetTransactionByID(e.Request().Context(), e.Param("id"), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TransactionController) GetTransactionsByUserID(e echo.Context) error {
	userID := e.Param("userId")
	if userID != middleware.UserID(e) {
		return response.WriteErrorResponse(e, errs.ErrOrderNotFound, nil)
	}

	resp, err := c.service.GetTransactionsByUserID(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TransactionController) UpdateTransactionStatus(e echo.Context) error {
	payload := dto.TransactionStatusRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateTransactionStatus").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.UpdateTransactionStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Transaction status updated", resp)
}

func (c *TransactionController) DeleteTransaction(e echo.Context) error {
	if err := c.service.DeleteTransaction(e.Request().Context(), e.Param("id"), middleware.UserID(e)); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Transaction deleted", nil)
}

// PaymentNotification receives the gateway webhook. Bodies that fail to bind
// still go through reconciliation so that they are rejected by lookup or
// signature rather than by parsing.
func (c *TransactionController) PaymentNotification(e echo.Context) error {
	payload := dto.PaymentNotification{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PaymentNotification").Msg("")
	}

	resp, err := c.service.HandlePaymentNotification(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	message := "Transaction status updated"
	if !resp.Applied {
		message = "Notification acknowledged"
	}

	return response.WriteSuccessResponse(e, message, resp.Transaction)
}

func (c *TransactionController) SyncTransactionStatus(e echo.Context) error {
	resp, err := c.service.SyncTransactionStatus(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Transaction status synchronized", resp)
}
