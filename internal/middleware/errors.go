package middleware

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"userhub/internal/pkg/apperror"
	"userhub/internal/pkg/response"
)

// ErrorHandler is the single boundary between service failures and HTTP
// responses. Handlers push errors into c.Error and return; typed errors
// come out with their own status and message, everything else becomes a
// sanitized 500 with full detail in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("panic method=%s path=%s client_ip=%s error=%v stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), recovered, debug.Stack())
				response.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			if appErr.Status >= http.StatusInternalServerError {
				log.Printf("request_error code=%s method=%s path=%s error=%v",
					appErr.Code, c.Request.Method, c.Request.URL.Path, err)
			}
			if appErr.Details != nil {
				response.ErrorWithDetails(c, appErr.Status, appErr.Message, appErr.Details)
				return
			}
			response.Error(c, appErr.Status, appErr.Message)
			return
		}

		log.Printf("internal_error method=%s path=%s client_ip=%s error=%v",
			c.Request.Method, c.Request.URL.Path, c.ClientIP(), err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
