package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	service service.DashboardService
}

func CreateDashboardController(g *echo.Group, service service.DashboardService) {
	c := DashboardController{
		service: service,
	}
	g.GET("/get/count", c.GetCounts)
}

func (c *DashboardController) GetCounts(e echo.Context) error {
	counts, err := c.service.GetCounts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Counts found successfully", counts)
}
