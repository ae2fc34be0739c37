package controller

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/service"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ShippingController struct {
	service service.ShippingService
}

func CreateShippingController(g *echo.Group, service service.ShippingService) {
	c := ShippingController{
		service: service,
	}

	g.GET("/shipping/couriers", c.GetCouriers)
	g.POST("/shipping/costs", c.GetShippingCosts)
	g.GET("/shipping/provinces", c.GetProvinces)
	g.GET("/shipping/provinces/:provinceId/cities", c.GetCities)
	g.POST("/shipping/waybills", c.CheckWaybill)
}

func (c *ShippingController) GetCouriers(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetCouriers())
}

func (c *ShippingController) GetShippingCosts(e echo.Context) error {
	payload := dto.ShippingCostRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetShippingCosts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetShippingCosts(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ShippingController) GetProvinces(e echo.Context) error {
	resp, err := c.service.GetProvinces(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ShippingController) GetCities(e echo.Context) error {
	resp, err := c.service.GetCities(e.Request().Context(), e.Param("provinceId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ShippingController) CheckWaybill(e echo.Context) error {
	payload := dto.WaybillRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CheckWaybill").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.CheckWaybill(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
