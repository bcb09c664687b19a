package response

import (
	"net/http"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// StatusResponse replies 200 with {"status":"success","message":...}.
func StatusResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: message,
	})
}

// ErrorResponse replies with the error envelope.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(
		code,
		NewResponse(
			false,
			code,
			map[string]any{
				"message": message,
			},
		))
}

// AbortWithError writes the envelope for e.
func AbortWithError(c *gin.Context, e Error) {
	ErrorResponse(c, e.Code, e.Message)
}
