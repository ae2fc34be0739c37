package controller

import (
	"github.com/alimikegami/e-commerce/storefront-service/internal/dto"
	"github.com/alimikegami/e-commerce/storefront-service/internal/service"
	pkgdto "github.com/alimikegami/e-commerce/storefront-service/pkg/dto"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/errs"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(g *echo.Group, service service.CatalogService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := CatalogController{
		service: service,
	}

	g.GET("/products", c.GetProducts)
	g.GET("/products/search", c.SearchProducts)
	g.GET("/products/category/:category", c.GetProductsByCategory)
	g.GET("/products/:id", c.GetProductByID)
	g.POST("/products", c.AddProduct, isLoggedIn, isAdmin)
	g.PUT("/products/:id", c.UpdateProduct, isLoggedIn, isAdmin)
	g.DELETE("/products/:id", c.DeleteProduct, isLoggedIn, isAdmin)

	g.GET("/categories", c.GetCategories)
	g.GET("/categories/:id", c.GetCategoryByID)
	g.POST("/categories", c.AddCategory, isLoggedIn, isAdmin)
	g.PUT("/categories/:id", c.UpdateCategory, isLoggedIn, isAdmin)
	g.DELETE("/categories/:id", c.DeleteCategory, isLoggedIn, isAdmin)

	g.GET("/banners", c.GetBanners)
	g.POST("/banners", c.AddBanner, isLoggedIn, isAdmin)
	g.DELETE("/banners/:id", c.DeleteBanner, isLoggedIn, isAdmin)
}

func (c *CatalogController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created", resp)
}

func (c *CatalogController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) SearchProducts(e echo.Context) error {
	payload := dto.ProductSearchRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.SearchProducts(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetProductsByCategory(e echo.Context) error {
	resp, err := c.service.GetProductsByCategory(e.Request().Context(), e.Param("category"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetProductByID(e echo.Context) error {
	resp, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")

	resp, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated", resp)
}

func (c *CatalogController) DeleteProduct(e echo.Context) error {
	if err := c.service.DeleteProduct(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted", nil)
}

func (c *CatalogController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Category created", resp)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetCategoryByID(e echo.Context) error {
	resp, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")

	resp, err := c.service.UpdateCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category updated", resp)
}

func (c *CatalogController) DeleteCategory(e echo.Context) error {
	if err := c.service.DeleteCategory(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category deleted", nil)
}

func (c *CatalogController) AddBanner(e echo.Context) error {
	payload := dto.BannerRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddBanner").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddBanner(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Banner created", resp)
}

func (c *CatalogController) GetBanners(e echo.Context) error {
	resp, err := c.service.GetBanners(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteBanner(e echo.Context) error {
	if err := c.service.DeleteBanner(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Banner deleted", nil)
}
