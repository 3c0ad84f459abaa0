package render

import "github.com/gin-gonic/gin"

// SVG writes a vector document with long-lived caching: illustrations are
// pure functions of the URL, so the same path always serves the same bytes.
func SVG(c *gin.Context, status int, doc string) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(status, "image/svg+xml; charset=utf-8", []byte(doc))
}
