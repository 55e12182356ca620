package response

import (
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

// Response is the single envelope every endpoint answers with.
type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	resp := Response{}
	resp.Status = statusCode
	resp.Data = data
	resp.Message = message

	return c.JSON(statusCode, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := Response{}
	resp.Status = statusCode
	resp.Message = errs.Message(err)

	return c.JSON(statusCode, resp)
}
