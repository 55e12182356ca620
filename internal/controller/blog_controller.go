package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type BlogController struct {
	service service.BlogService
	stager  asset.Stager
}

func CreateBlogController(g *echo.Group, service service.BlogService, stager asset.Stager) {
	c := BlogController{
		service: service,
		stager:  stager,
	}
	g.POST("/create", c.AddBlog)
	g.GET("/get/all", c.GetBlogs)
	g.GET("/get/recent", c.GetRecentBlogs)
	g.GET("/:id", c.GetBlog)
	g.PATCH("/update/:id", c.UpdateBlog)
	g.DELETE("/delete/:id", c.DeleteBlog)
}

func (c *BlogController) AddBlog(e echo.Context) error {
	payload := dto.BlogRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail", "detailImage")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	title, err := c.service.AddBlog(e.Request().Context(), payload, uploads[0], uploads[1])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blog created successfully", title)
}

func (c *BlogController) GetBlog(e echo.Context) error {
	blog, err := c.service.GetBlogByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blog found successfully", blog)
}

func (c *BlogController) GetBlogs(e echo.Context) error {
	blogs, err := c.service.GetBlogs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blogs found successfully", blogs)
}

func (c *BlogController) GetRecentBlogs(e echo.Context) error {
	blogs, err := c.service.GetRecentBlogs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blogs found successfully", blogs)
}

func (c *BlogController) UpdateBlog(e echo.Context) error {
	payload := dto.BlogUpdateRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	uploads, err := stageFiles(e, c.stager, "thumbnail", "detailImage")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	blog, err := c.service.UpdateBlog(e.Request().Context(), e.Param("id"), payload, uploads[0], uploads[1])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blog updated successfully", blog)
}

func (c *BlogController) DeleteBlog(e echo.Context) error {
	err := c.service.DeleteBlog(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Blog deleted successfully", nil)
}
