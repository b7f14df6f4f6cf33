package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/filter"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/service"
)

type Handler struct {
	gov *service.Governance
	log zerolog.Logger
}

func NewHandler(gov *service.Governance, log zerolog.Logger) *Handler {
	return &Handler{gov: gov, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.health)

	api := router.Group("/api")
	api.GET("/contracts", h.contracts)
	api.GET("/provisionals", h.provisionals)
	api.GET("/change-orders", h.changeOrders)
	api.GET("/claims", h.claims)
	api.GET("/ipcs", h.ipcs)
	api.GET("/advances", h.advances)
	api.GET("/summary", h.summary)
	api.GET("/export/csv/:entity", h.exportCSV)
	api.GET("/export/xlsx", h.exportExcel)
	api.GET("/export/pdf", h.exportPDF)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) contracts(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.Contracts(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) provisionals(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.Provisionals(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) changeOrders(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.ChangeOrders(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) claims(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.Claims(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) ipcs(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.IPCs(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) advances(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.Advances(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) summary(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	data, err := h.gov.Summary(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *Handler) exportCSV(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	entity := strings.TrimSpace(c.Param("entity"))
	artifact, err := h.gov.ExportCSV(c.Request.Context(), entity, query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.serveArtifact(c, artifact)
}

func (h *Handler) exportExcel(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	artifact, err := h.gov.ExportExcel(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.serveArtifact(c, artifact)
}

func (h *Handler) exportPDF(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}
	artifact, err := h.gov.ExportPDF(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.serveArtifact(c, artifact)
}

func (h *Handler) serveArtifact(c *gin.Context, artifact *service.Artifact) {
	c.Header("Content-Disposition", "attachment; filename=\""+artifact.FileName+"\"")
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}

// parseQuery reads the shared filter parameters. On a bad range value it
// writes the 400 itself and reports !ok.
func (h *Handler) parseQuery(c *gin.Context) (service.Query, bool) {
	timeRange, ok := filter.ParseRange(c.Query("range"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range"})
		return service.Query{}, false
	}
	return service.Query{
		Packages: parsePackages(c.Query("pkgs")),
		Status:   strings.TrimSpace(c.DefaultQuery("status", "All")),
		Search:   c.Query("q"),
		Range:    timeRange,
	}, true
}

// parsePackages splits the pkgs parameter. Absent or blank means every
// package; "none" is the explicit empty selection.
func parsePackages(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.EqualFold(raw, "none") {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	pkgs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			pkgs = append(pkgs, part)
		}
	}
	if len(pkgs) == 0 {
		return nil
	}
	return pkgs
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpstream):
		h.log.Error().Err(err).Msg("data source read failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "data source unavailable"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
