package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jala-youth/jala-web/internal/content"
	"github.com/jala-youth/jala-web/internal/response"
)

// ContentHandler serves the static copy of the public pages.
type ContentHandler struct {
	site content.Site
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{site: content.Load()}
}

// Site godoc
// GET /api/v1/public/site
func (h *ContentHandler) Site(c *gin.Context) {
	response.Success(c, http.StatusOK, h.site)
}
