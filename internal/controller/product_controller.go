package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type ProductController struct {
	service service.ProductService
	stager  asset.Stager
}

func CreateProductController(g *echo.Group, service service.ProductService, stager asset.Stager) {
	c := ProductController{
		service: service,
		stager:  stager,
	}
	g.POST("/create", c.AddProduct)
	g.GET("/get/all", c.GetProducts)
	g.GET("/get/recent", c.GetRecentProducts)
	g.GET("/:id", c.GetProduct)
	g.PATCH("/update/:id", c.UpdateProduct)
	g.DELETE("/delete/:id", c.DeleteProduct)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail", "bigImage")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	name, err := c.service.AddProduct(e.Request().Context(), payload, uploads[0], uploads[1])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, "Product created successfully", name)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product found successfully", product)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	products, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Products found successfully", products)
}

func (c *ProductController) GetRecentProducts(e echo.Context) error {
	products, err := c.service.GetRecentProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Products found successfully", products)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductUpdateRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail", "bigImage")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	id, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload, uploads[0], uploads[1])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product updated successfully", id)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product deleted successfully", nil)
}
