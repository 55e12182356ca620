package controller

import (
	"net/http"

	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}
	g.POST("/login", c.Login)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		log.Ctx(e.Request().Context()).Info().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, err)
	}

	user, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Login successful", user)
}
