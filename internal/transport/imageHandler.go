package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
)

// ImageHandler serves the URL, srcset and img endpoints.
type ImageHandler struct {
	renderer    *render.Renderer
	defaultLazy bool
}

func NewImageHandler(r *render.Renderer, defaultLazy bool) *ImageHandler {
	return &ImageHandler{renderer: r, defaultLazy: defaultLazy}
}

type imgRequest struct {
	render.Props
	Lazy *bool `json:"lazy"`
}

func (h *ImageHandler) URL(c *gin.Context) {
	var p render.Props
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.renderer.URL(p)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": u})
}

func (h *ImageHandler) Srcset(c *gin.Context) {
	var p render.Props
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := h.renderer.ResponsiveSet(p)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, set)
}

func (h *ImageHandler) Img(c *gin.Context) {
	var req imgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := req.Props
	p.Lazy = h.defaultLazy
	if req.Lazy != nil {
		p.Lazy = *req.Lazy
	}

	html, err := h.renderer.Image(p)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Breakpoints reports the ladder used when a request carries none.
func (h *ImageHandler) Breakpoints(c *gin.Context) {
	ladder := h.renderer.Breakpoints
	if ladder == nil {
		ladder = thumbor.DefaultBreakpoints
	}
	c.JSON(http.StatusOK, gin.H{"breakpoints": ladder})
}

func (h *ImageHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// statusFor maps caller mistakes to 400 and anything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, thumbor.ErrMissingEndpoint),
		errors.Is(err, thumbor.ErrMalformedSourceURL),
		errors.Is(err, thumbor.ErrEmptyBreakpointSet),
		errors.Is(err, thumbor.ErrInvalidBreakpoint),
		errors.Is(err, render.ErrInvalidAttribute):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
