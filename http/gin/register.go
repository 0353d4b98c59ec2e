// Package gin binds the validation service into a gin engine.
package gin

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rawgroundbeef/x402check/fetch"
	x402http "github.com/rawgroundbeef/x402check/http"
)

// Register adds the validation endpoints to a gin router. The handler
// does the work; this adapter only translates gin's context.
func Register(r gin.IRoutes, h *x402http.Handler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/validate", func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodySize()))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document exceeds the accepted size"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
			return
		}
		c.JSON(http.StatusOK, h.Validate(body, strictParam(c)))
	})

	r.GET("/validate", func(c *gin.Context) {
		rawURL := c.Query("url")
		if rawURL == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
			return
		}

		result, err := h.ValidateURL(c.Request.Context(), rawURL, strictParam(c))
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, fetch.ErrInvalidURL) {
				status = http.StatusBadRequest
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	})
}

func strictParam(c *gin.Context) bool {
	switch c.Query("strict") {
	case "1", "true", "yes":
		return true
	}
	return false
}
