package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/audit"
	"github.com/fairlead/compliance-engine/internal/compliance"
	"github.com/fairlead/compliance-engine/internal/events"
	"github.com/fairlead/compliance-engine/internal/export"
	"github.com/fairlead/compliance-engine/internal/metrics"
	"github.com/fairlead/compliance-engine/internal/store"
)

var imoPattern = regexp.MustCompile(`^\d{7}$`)

// ReportHandler handles the compliance report HTTP API
type ReportHandler struct {
	generator *compliance.Generator
	store     *store.ReportStore
	renderer  *export.Renderer
	publisher events.Publisher
	trail     *audit.Trail
	collector *metrics.Collector
	logger    *zap.Logger

	requestTimeout time.Duration
}

// NewReportHandler creates a report handler and registers the custom
// request validators.
func NewReportHandler(
	generator *compliance.Generator,
	reportStore *store.ReportStore,
	renderer *export.Renderer,
	publisher events.Publisher,
	trail *audit.Trail,
	collector *metrics.Collector,
	logger *zap.Logger,
	requestTimeout time.Duration,
) *ReportHandler {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("imo", func(fl validator.FieldLevel) bool {
			return imoPattern.MatchString(fl.Field().String())
		})
	}

	return &ReportHandler{
		generator: generator,
		store:     reportStore,
		renderer:  renderer,
		publisher: publisher,
		trail:     trail,
		collector: collector,
		logger:    logger,

		requestTimeout: requestTimeout,
	}
}

// requestContext derives the context for one report generation, applying
// the configured deadline when one is set.
func (h *ReportHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.requestTimeout)
}

// RegisterRoutes registers all report-related routes
func (h *ReportHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api/v1")

	api.POST("/reports/compliance-report", h.GenerateReport)
	api.POST("/reports/quick-check", h.QuickCheck)
	api.GET("/reports", h.ListReports)
	api.GET("/reports/:report_id", h.GetReport)
	api.GET("/reports/:report_id/export", h.ExportReport)
	api.DELETE("/reports/:report_id", h.DeleteReport)

	api.GET("/ports", h.ListPorts)
	api.GET("/ports/:port_code/requirements", h.PortRequirements)
	api.GET("/catalog/:vessel_class", h.GetCatalog)

	api.GET("/audit/events", h.AuditEvents)
}

// vesselInfoRequest mirrors compliance.VesselInfo with binding rules
type vesselInfoRequest struct {
	VesselName            string   `json:"vessel_name" binding:"required"`
	IMONumber             string   `json:"imo_number" binding:"omitempty,imo"`
	VesselType            string   `json:"vessel_type"`
	FlagState             string   `json:"flag_state"`
	GrossTonnage          *float64 `json:"gross_tonnage" binding:"omitempty,gt=0"`
	YearBuilt             *int     `json:"year_built" binding:"omitempty,gte=1900"`
	ClassificationSociety string   `json:"classification_society"`
}

func (v vesselInfoRequest) toModel() compliance.VesselInfo {
	return compliance.VesselInfo{
		VesselName:            v.VesselName,
		IMONumber:             v.IMONumber,
		VesselType:            v.VesselType,
		FlagState:             v.FlagState,
		GrossTonnage:          v.GrossTonnage,
		YearBuilt:             v.YearBuilt,
		ClassificationSociety: v.ClassificationSociety,
	}
}

type generateReportRequest struct {
	VesselInfo      vesselInfoRequest           `json:"vessel_info" binding:"required"`
	RoutePorts      []string                    `json:"route_ports" binding:"required,min=1,dive,len=5"`
	UserDocuments   []compliance.OnFileDocument `json:"user_documents"`
	VoyageStartDate *compliance.Date            `json:"voyage_start_date"`
}

// GenerateReport runs the full analysis, stores the report and returns it.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var request generateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	started := time.Now()
	report, err := h.generator.GenerateReport(
		ctx,
		request.VesselInfo.toModel(),
		request.RoutePorts,
		request.UserDocuments,
		request.VoyageStartDate,
	)
	if err != nil {
		h.logger.Error("Failed to generate compliance report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate compliance report"})
		return
	}
	h.collector.ReportGenerated(string(report.Summary.OverallStatus), time.Since(started))

	if err := h.store.Put(report); err != nil {
		h.logger.Error("Failed to store compliance report",
			zap.String("report_id", report.ReportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store compliance report"})
		return
	}
	h.collector.SetReportsStored(h.store.Len())

	if err := h.publisher.PublishReportGenerated(c.Request.Context(), report); err != nil {
		h.logger.Warn("Failed to publish report event",
			zap.String("report_id", report.ReportID), zap.Error(err))
	}

	h.trail.Record(audit.EventReportGenerated, report.ReportID, report.VesselInfo.VesselName,
		map[string]string{
			"overall_status": string(report.Summary.OverallStatus),
			"detention_risk": string(report.DetentionRisk),
		})

	c.JSON(http.StatusCreated, report)
}

// QuickCheck returns a compact go/no-go answer without storing anything.
func (h *ReportHandler) QuickCheck(c *gin.Context) {
	var request generateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check := h.generator.QuickCheck(request.VesselInfo.toModel(), request.RoutePorts, request.UserDocuments)

	h.trail.Record(audit.EventQuickCheck, "", check.VesselName,
		map[string]string{"overall_status": string(check.OverallStatus)})

	c.JSON(http.StatusOK, check)
}

// ListReports returns listing records for all stored reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	records := h.store.List()
	c.JSON(http.StatusOK, gin.H{
		"reports": records,
		"total":   len(records),
	})
}

// GetReport returns a single stored report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	reportID := c.Param("report_id")

	report, err := h.store.Get(reportID)
	if err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		h.logger.Error("Failed to load report", zap.String("report_id", reportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReport renders a stored report in the requested format.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	reportID := c.Param("report_id")
	format := c.DefaultQuery("format", export.FormatJSON)

	report, err := h.store.Get(reportID)
	if err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		h.logger.Error("Failed to load report", zap.String("report_id", reportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}

	content, contentType, err := h.renderer.Render(report, format)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to render report",
			zap.String("report_id", reportID), zap.String("format", format), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	h.collector.ExportServed(format)

	h.trail.Record(audit.EventReportExported, reportID, report.VesselInfo.VesselName,
		map[string]string{"format": format})

	filename := fmt.Sprintf("%s.%s", reportID, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, content)
}

// DeleteReport removes a stored report.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	reportID := c.Param("report_id")

	if err := h.store.Delete(reportID); err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		h.logger.Error("Failed to delete report", zap.String("report_id", reportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}
	h.collector.SetReportsStored(h.store.Len())

	h.trail.Record(audit.EventReportDeleted, reportID, "", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// ListPorts returns the ports known to the zone tables with their
// classification attributes.
func (h *ReportHandler) ListPorts(c *gin.Context) {
	atlas := h.generator.Atlas()

	ports := make([]compliance.PortRequirement, 0)
	for _, code := range atlas.KnownPorts() {
		ports = append(ports, atlas.Describe(code))
	}

	c.JSON(http.StatusOK, gin.H{
		"ports": ports,
		"total": len(ports),
	})
}

// PortRequirements returns the requirement brief for one port.
func (h *ReportHandler) PortRequirements(c *gin.Context) {
	portCode := c.Param("port_code")
	if len(portCode) != 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "port_code must be a 5-character UN/LOCODE"})
		return
	}

	brief := h.generator.PortBrief(c.Request.Context(), portCode, c.Query("vessel_class"))
	c.JSON(http.StatusOK, brief)
}

// GetCatalog returns the required-certificate list for a vessel class.
// Unknown classes are a 404 here, not a cargo-ship fallback.
func (h *ReportHandler) GetCatalog(c *gin.Context) {
	vesselClass := c.Param("vessel_class")

	specs, ok := h.generator.Catalog().Required(vesselClass)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Unknown vessel class: %s", vesselClass)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vessel_class": vesselClass,
		"certificates": specs,
		"total":        len(specs),
	})
}

// AuditEvents returns the retained audit trail, newest first.
func (h *ReportHandler) AuditEvents(c *gin.Context) {
	entries := h.trail.Recent()
	c.JSON(http.StatusOK, gin.H{
		"events": entries,
		"total":  len(entries),
	})
}

// HealthCheck reports service liveness.
func (h *ReportHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"stored_reports": h.store.Len(),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
