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

type CartController struct {
	cartService     service.CartService
	wishlistService service.WishlistService
}

func CreateCartController(g *echo.Group, cartService service.CartService, wishlistService service.WishlistService, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		cartService:     cartService,
		wishlistService: wishlistService,
	}

	carts := g.Group("/carts", isLoggedIn)
	carts.GET("", c.GetCart)
	carts.POST("", c.AddToCart)
	carts.PUT("/:id", c.UpdateCartQuantity)
	carts.DELETE("/:id", c.DeleteCart)

	wishlists := g.Group("/wishlists", isLoggedIn)
	wishlists.GET("", c.GetWishlist)
	wishlists.POST("", c.AddToWishlist)
	wishlists.DELETE("/:productId", c.DeleteFromWishlist)
}

func (c *CartController) GetCart(e echo.Context) error {
	resp, err := c.cartService.GetCart(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddToCart(e echo.Context) error {
	payload := dto.CartRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddToCart").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.UserID = middleware.UserID(e)

	resp, err := c.cartService.AddToCart(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product added to cart", resp)
}

func (c *CartController) UpdateCartQuantity(e echo.Context) error {
	payload := dto.CartRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateCartQuantity").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")
	payload.UserID = middleware.UserID(e)

	resp, err := c.cartService.UpdateCartQuantity(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart updated", resp)
}

func (c *CartController) DeleteCart(e echo.Context) error {
	if err := c.cartService.DeleteCart(e.Request().Context(), e.Param("id"), middleware.UserID(e)); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart item removed", nil)
}

func (c *CartController) GetWishlist(e echo.Context) error {
	resp, err := c.wishlistService.GetWishlist(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddToWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddToWishlist").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.UserID = middleware.UserID(e)

	resp, err := c.wishlistService.AddToWishlist(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product added to wishlist", resp)
}

func (c *CartController) DeleteFromWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{
		UserID:    middleware.UserID(e),
		ProductID: e.Param("productId"),
	}

	if err := c.wishlistService.DeleteFromWishlist(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product removed from wishlist", nil)
}
