package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	maxDiagnosticError       = 50
	maxDiagnosticCollections = 10
)

// Diagnostics reports liveness, store connectivity and whether the store
// settings are present. It always answers 200.
func (h *Handler) Diagnostics(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setOrNot(h.env.DatabaseURLSet),
		"database_name":     setOrNot(h.env.DatabaseNameSet),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	h.probeStore(c, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) probeStore(c *gin.Context, resp gin.H) {
	defer func() {
		if r := recover(); r != nil {
			resp["database"] = "❌ Error: " + truncate(fmt.Sprint(r), maxDiagnosticError)
		}
	}()
	if h.probe == nil {
		resp["database"] = "⚠️  Available but not initialized"
		return
	}
	names, err := h.probe.CollectionNames(c.Request.Context())
	switch {
	case errors.Is(err, store.ErrUnavailable):
		resp["database"] = "⚠️  Available but not initialized"
	case err != nil:
		resp["connection_status"] = "Connected"
		resp["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), maxDiagnosticError)
	default:
		resp["connection_status"] = "Connected"
		resp["database"] = "✅ Connected & Working"
		if len(names) > maxDiagnosticCollections {
			names = names[:maxDiagnosticCollections]
		}
		if names != nil {
			resp["collections"] = names
		}
	}
}

func setOrNot(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
