package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

// Supported export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for export formats the renderer does
// not know.
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format")

// Renderer renders compliance reports into downloadable documents
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the report in the requested format and returns the
// content bytes plus the MIME type to serve them with.
func (r *Renderer) Render(report *compliance.ComplianceReport, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		content, err := r.RenderJSON(report)
		return content, "application/json", err
	case FormatCSV:
		content, err := r.RenderCSV(report)
		return content, "text/csv", err
	case FormatPDF:
		content, err := r.RenderPDF(report)
		return content, "application/pdf", err
	case FormatXLSX:
		content, err := r.RenderXLSX(report)
		return content, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// RenderJSON renders the report as indented JSON.
func (r *Renderer) RenderJSON(report *compliance.ComplianceReport) ([]byte, error) {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report %s: %w", report.ReportID, err)
	}
	return content, nil
}

// RenderCSV renders the document analysis and action plan as CSV sections.
func (r *Renderer) RenderCSV(report *compliance.ComplianceReport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	rows := [][]string{
		{"Report", report.ReportID},
		{"Vessel", report.VesselInfo.VesselName},
		{"Overall Status", string(report.Summary.OverallStatus)},
		{"Compliance Score", strconv.Itoa(report.Summary.ComplianceScore)},
		{"Detention Risk", string(report.DetentionRisk)},
		{},
		{"Document Type", "Status", "Expiry Date", "Days Until Expiry", "Regulation", "Priority"},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, doc := range documentRows(report.DocumentAnalysis) {
		expiry := ""
		if doc.ExpiryDate != nil {
			expiry = doc.ExpiryDate.String()
		}
		days := ""
		if doc.DaysUntilExpiry != nil {
			days = strconv.Itoa(*doc.DaysUntilExpiry)
		}
		row := []string{doc.DocumentType, string(doc.Status), expiry, days, doc.RegulationSource, string(doc.Priority)}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	actionHeader := [][]string{
		{},
		{"Action ID", "Priority", "Category", "Action", "Reason", "Deadline", "Responsible Party"},
	}
	for _, row := range actionHeader {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, a := range report.AllActions() {
		row := []string{a.ActionID, string(a.Priority), a.Category, a.Action, a.Reason, a.Deadline, a.ResponsibleParty}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// documentRows flattens the gap analysis buckets in partition order.
func documentRows(docs compliance.DocumentGapAnalysis) []compliance.DocumentCheckResult {
	rows := make([]compliance.DocumentCheckResult, 0,
		len(docs.ExpiredDocuments)+len(docs.MissingDocuments)+
			len(docs.ExpiringSoon)+len(docs.ValidDocuments))
	rows = append(rows, docs.ExpiredDocuments...)
	rows = append(rows, docs.MissingDocuments...)
	rows = append(rows, docs.ExpiringSoon...)
	rows = append(rows, docs.ValidDocuments...)
	return rows
}
