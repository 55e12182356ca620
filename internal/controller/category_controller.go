package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service service.CategoryService
	stager  asset.Stager
}

func CreateCategoryController(g *echo.Group, service service.CategoryService, stager asset.Stager) {
	c := CategoryController{
		service: service,
		stager:  stager,
	}
	g.POST("/create", c.AddCategory)
	g.GET("/get/all", c.GetCategories)
	g.GET("/get/names", c.GetCategoryNames)
	g.GET("/get/recent", c.GetRecentCategories)
	g.GET("/get/:id", c.GetCategory)
	g.GET("/:id", c.GetCategory)
	g.PATCH("/update/:id", c.UpdateCategory)
	g.DELETE("/delete/:id", c.DeleteCategory)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	name, err := c.service.AddCategory(e.Request().Context(), payload, uploads[0])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Category created successfully", name)
}

func (c *CategoryController) GetCategory(e echo.Context) error {
	category, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Category found successfully", category)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	categories, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Categories found successfully", categories)
}

func (c *CategoryController) GetCategoryNames(e echo.Context) error {
	names, err := c.service.GetCategoryNames(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Categories found successfully", names)
}

func (c *CategoryController) GetRecentCategories(e echo.Context) error {
	categories, err := c.service.GetRecentCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Categories found successfully", categories)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryUpdateRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	category, err := c.service.UpdateCategory(e.Request().Context(), e.Param("id"), payload, uploads[0])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Category updated successfully", category)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Category deleted successfully", nil)
}
