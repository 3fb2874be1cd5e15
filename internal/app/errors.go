package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/middleware"
	"github.com/simp-lee/shopadmin/internal/pkg"
)

// errorTemplates maps HTTP status codes to their error template paths.
var errorTemplates = map[int]string{
	http.StatusBadRequest:          "errors/400.html",
	http.StatusNotFound:            "errors/404.html",
	http.StatusInternalServerError: "errors/500.html",
	http.StatusBadGateway:          "errors/500.html",
}

// renderError sends an error response appropriate for the client.
// API paths and explicit JSON requests get the JSON envelope. Browsers get
// the error page for code, and htmx navigations only its content block so
// the error replaces the current view in place. The base layout configures
// htmx to swap 4xx and 5xx responses.
func renderError(c *gin.Context, code int, message string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || wantsJSON(c) || (!acceptsHTML(c) && !middleware.IsHTMX(c)) {
		c.JSON(code, pkg.Response{Code: code, Message: message})
		return
	}
	renderHTMLErrorPage(c, code, message)
}

// renderHTMLErrorPage renders the error template for the given status code.
// If no template exists for the code, it falls back to errors/500.html.
// If rendering panics, it falls back to a plain text response.
func renderHTMLErrorPage(c *gin.Context, code int, message string) {
	defer func() {
		if r := recover(); r != nil {
			c.Data(code, "text/plain; charset=utf-8",
				[]byte(fmt.Sprintf("%d %s", code, http.StatusText(code))))
		}
	}()

	tmpl, ok := errorTemplates[code]
	if !ok {
		tmpl = errorTemplates[http.StatusInternalServerError]
	}
	if middleware.WantsFragment(c) {
		tmpl += fragmentSep + contentBlock
		c.Header(middleware.HeaderHXRetarget, "#"+contentBlock)
		c.Header(middleware.HeaderHXReswap, "innerHTML")
	}
	c.HTML(code, tmpl, gin.H{
		"Status":  code,
		"Message": message,
	})
}

func wantsJSON(c *gin.Context) bool {
	accept := strings.ToLower(c.GetHeader("Accept"))
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// acceptsHTML returns true if the client accepts an HTML response.
// Matches text/html, */* (browser default), and empty Accept headers.
func acceptsHTML(c *gin.Context) bool {
	accept := strings.ToLower(c.GetHeader("Accept"))
	return strings.Contains(accept, "text/html") ||
		strings.Contains(accept, "*/*") ||
		strings.TrimSpace(accept) == ""
}
