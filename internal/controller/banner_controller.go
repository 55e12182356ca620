package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type BannerController struct {
	service service.BannerService
	stager  asset.Stager
}

func CreateBannerController(g *echo.Group, service service.BannerService, stager asset.Stager) {
	c := BannerController{
		service: service,
		stager:  stager,
	}
	g.POST("/create", c.AddBanner)
	g.GET("/get", c.GetBanners)
	g.GET("/get/all", c.GetBanners)
	g.GET("/get/recent", c.GetRecentBanners)
	g.GET("/:id", c.GetBanner)
	g.PATCH("/update/:id", c.UpdateBanner)
	g.DELETE("/delete/:id", c.DeleteBanner)
}

func (c *BannerController) AddBanner(e echo.Context) error {
	uploads, err := stageFiles(e, c.stager, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	if err := c.service.AddBanner(e.Request().Context(), uploads[0]); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner created successfully", struct{}{})
}

func (c *BannerController) GetBanner(e echo.Context) error {
	banner, err := c.service.GetBannerByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner found successfully", banner)
}

func (c *BannerController) GetBanners(e echo.Context) error {
	banners, err := c.service.GetBanners(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner found successfully", banners)
}

func (c *BannerController) GetRecentBanners(e echo.Context) error {
	banners, err := c.service.GetRecentBanners(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner found successfully", banners)
}

func (c *BannerController) UpdateBanner(e echo.Context) error {
	uploads, err := stageFiles(e, c.stager, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	defer asset.CleanupAll(uploads...)

	banner, err := c.service.UpdateBanner(e.Request().Context(), e.Param("id"), uploads[0])
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner updated successfully", banner)
}

func (c *BannerController) DeleteBanner(e echo.Context) error {
	err := c.service.DeleteBanner(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Banner deleted successfully", nil)
}
