package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// htmx request and response headers used for in-page navigation.
const (
	HeaderHXRequest        = "HX-Request"
	HeaderHXBoosted        = "HX-Boosted"
	HeaderHXHistoryRestore = "HX-History-Restore-Request"
	HeaderHXPushURL        = "HX-Push-Url"
	HeaderHXRetarget       = "HX-Retarget"
	HeaderHXReswap         = "HX-Reswap"
)

// IsHTMX reports whether the request was issued by htmx rather than a full
// browser navigation.
func IsHTMX(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(HeaderHXRequest), "true")
}

// IsHistoryRestore reports whether htmx is restoring a history entry it had
// no snapshot for. Such requests replace the whole body and need a full page.
func IsHistoryRestore(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(HeaderHXHistoryRestore), "true")
}

// WantsFragment reports whether the response should be a page fragment
// rather than a full document.
func WantsFragment(c *gin.Context) bool {
	return IsHTMX(c) && !IsHistoryRestore(c)
}

// acceptsHTML reports whether the request's Accept header asks for HTML.
func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(strings.ToLower(c.GetHeader("Accept")), "text/html")
}
