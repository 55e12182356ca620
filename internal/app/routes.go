package app

import (
	"errors"
	"net/http"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/controller"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Products   service.ProductService
	Categories service.CategoryService
	Blogs      service.BlogService
	Banners    service.BannerService
	Users      service.UserService
	Dashboard  service.DashboardService
}

func RegisterRoutes(g *echo.Group, svc Services, stager asset.Stager) {
	controller.CreateDashboardController(g.Group("/base"), svc.Dashboard)
	controller.CreateUserController(g.Group("/users"), svc.Users)
	controller.CreateCategoryController(g.Group("/categories"), svc.Categories, stager)
	controller.CreateProductController(g.Group("/products"), svc.Products, stager)
	controller.CreateBlogController(g.Group("/blogs"), svc.Blogs, stager)
	controller.CreateBannerController(g.Group("/banners"), svc.Banners, stager)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, http.StatusOK, "Hello, World!", nil)
	})
}

// HTTPErrorHandler keeps router level failures (unknown route, wrong method,
// panics recovered by middleware) inside the same response envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}

		c.JSON(he.Code, response.Response{Status: he.Code, Message: message})
		return
	}

	log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "HTTPErrorHandler").Msg("")
	response.WriteErrorResponse(c, err)
}
