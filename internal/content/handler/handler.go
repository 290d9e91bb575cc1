package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aziendachimica/website/backend/content-api/internal/content"
	"github.com/aziendachimica/website/backend/content-api/internal/content/service"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
	"github.com/aziendachimica/website/backend/content-api/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// EnvStatus reports which store settings were provided, without their values.
type EnvStatus struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// Handler serves the content API.
type Handler struct {
	svc   service.Service
	probe store.Store
	env   EnvStatus
}

// New returns a Handler. probe is the store inspected by the diagnostic
// endpoint; it is normally the one backing svc.
func New(svc service.Service, probe store.Store, env EnvStatus) *Handler {
	return &Handler{svc: svc, probe: probe, env: env}
}

// Register mounts all routes. submit is applied to the two POST endpoints only
// (e.g. a rate limiter).
func (h *Handler) Register(r gin.IRouter, submit ...gin.HandlerFunc) {
	r.GET("/", h.Root)
	r.GET("/test", h.Diagnostics)

	api := r.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:slug", h.GetProduct)
	api.GET("/sectors", h.ListSectors)
	api.GET("/sectors/:slug", h.GetSector)
	api.GET("/news", h.ListNews)
	api.GET("/documents", h.ListDocuments)
	api.GET("/jobs", h.ListJobs)
	api.GET("/company", h.GetCompany)

	withSubmit := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, submit...), final)
	}
	api.POST("/applications", withSubmit(h.SubmitApplication)...)
	api.POST("/contact", withSubmit(h.SubmitContact)...)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Chemical Company API running"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.svc.ListCategories(c.Request.Context())
	respond(c, items, err)
}

func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.svc.ListProducts(c.Request.Context(), c.Query("category"), c.Query("q"))
	respond(c, items, err)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}
	respond(c, p, err)
}

func (h *Handler) ListSectors(c *gin.Context) {
	items, err := h.svc.ListSectors(c.Request.Context())
	respond(c, items, err)
}

func (h *Handler) GetSector(c *gin.Context) {
	s, err := h.svc.GetSector(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sector not found"})
		return
	}
	respond(c, s, err)
}

func (h *Handler) ListNews(c *gin.Context) {
	items, err := h.svc.ListNews(c.Request.Context(), c.Query("tag"))
	respond(c, items, err)
}

// ListDocuments filters on ?product= (stored as product_slug), ?category= and ?language=.
func (h *Handler) ListDocuments(c *gin.Context) {
	items, err := h.svc.ListDocuments(c.Request.Context(), c.Query("product"), c.Query("category"), c.Query("language"))
	respond(c, items, err)
}

func (h *Handler) ListJobs(c *gin.Context) {
	items, err := h.svc.ListJobs(c.Request.Context(), c.Query("department"))
	respond(c, items, err)
}

func (h *Handler) GetCompany(c *gin.Context) {
	p, found, err := h.svc.GetCompany(c.Request.Context())
	if err == nil && !found {
		c.JSON(http.StatusOK, gin.H{"company_name": content.DefaultCompanyName})
		return
	}
	respond(c, p, err)
}

func (h *Handler) SubmitApplication(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read request body"})
		return
	}
	a, err := content.Decode[content.Application](body)
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, gin.H{"status": "ok"}, h.svc.SubmitApplication(c.Request.Context(), a))
}

func (h *Handler) SubmitContact(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read request body"})
		return
	}
	m, err := content.Decode[content.ContactMessage](body)
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, gin.H{"status": "ok"}, h.svc.SubmitContact(c.Request.Context(), m))
}

func respond(c *gin.Context, body any, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// writeError maps an error to its JSON response. Store failure details are
// logged, never returned.
func writeError(c *gin.Context, err error) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		detail := make([]gin.H, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			loc := []string{"body"}
			if f.Field != "body" {
				loc = append(loc, strings.Split(f.Field, ".")...)
			}
			detail = append(detail, gin.H{"loc": loc, "msg": f.Message, "type": f.Type})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
	case errors.Is(err, store.ErrUnavailable):
		logger.Warnw("store unavailable", "path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Database not available"})
	default:
		logger.Errorw("request failed", "path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
