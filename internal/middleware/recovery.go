package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
)

const errorPage500 = "errors/500.html"

// Recovery returns a gin middleware that recovers from panics, logs the
// panic with its stack, and answers with a 500.
//
// API paths and non-HTML clients get the JSON envelope
//
//	{"code": 500, "message": "internal server error", "data": null}
//
// Browsers get errors/500.html, or only its content block for htmx
// navigations. If the HTML renderer is missing or fails, a plain text body
// is written instead.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.ErrorContext(c.Request.Context(), "panic recovered",
				slog.Any("panic", rec),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("stack", string(debug.Stack())),
			)

			c.Abort()

			if strings.HasPrefix(c.Request.URL.Path, "/api/") || (!acceptsHTML(c) && !IsHTMX(c)) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"code":    http.StatusInternalServerError,
					"message": "internal server error",
					"data":    nil,
				})
				return
			}
			renderHTMLError(c)
		}()
		c.Next()
	}
}

func renderHTMLError(c *gin.Context) {
	defer func() {
		if recover() != nil {
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("500 Internal Server Error"))
		}
	}()

	name := errorPage500
	if WantsFragment(c) {
		name += "#content"
		c.Header(HeaderHXRetarget, "#content")
		c.Header(HeaderHXReswap, "innerHTML")
	}
	c.HTML(http.StatusInternalServerError, name, gin.H{})
}
