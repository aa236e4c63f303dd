package middleware

import (
	"log/slog"
	"net/http"

	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			logServerErrors(c)
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					logServerErrors(c)
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{
			Success: false,
			Message: "Internal server error",
		})
	}
}

// logServerErrors logs causes of 5xx responses with a truncated stack so
// transport failures are diagnosable without leaking detail to the client.
func logServerErrors(c *gin.Context) {
	if c.Writer.Status() < http.StatusInternalServerError {
		return
	}
	for _, ginErr := range c.Errors {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", ginErr.Err.Error(),
			"stack", errs.ExtractStackLines(ginErr.Err, 5),
		)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Success: false,
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
