package webui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the front-end page and its assets.
type Handler struct {
	reader *ResourceReader
}

// NewHandler returns a Handler reading from r.
func NewHandler(r *ResourceReader) *Handler {
	return &Handler{reader: r}
}

// Register mounts "/" and "/assets/*filepath" on r.
func (h *Handler) Register(r gin.IRouter) error {
	assets, err := h.reader.Sub("static/assets")
	if err != nil {
		return err
	}
	r.GET("/", h.Index)
	r.HEAD("/", h.Index)
	r.StaticFS("/assets", http.FS(assets))
	return nil
}

// Index serves index.html.
func (h *Handler) Index(c *gin.Context) {
	page := h.reader.Read("index.html")
	if page == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
