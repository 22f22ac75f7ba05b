package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

// RenderPDF renders the report as an A4 portrait PDF document.
func (r *Renderer) RenderPDF(report *compliance.ComplianceReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Maritime Compliance Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Report ID: %s", report.ReportID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04 UTC")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Valid until: %s", report.ValidUntil.Format("2006-01-02")))
	pdf.Ln(10)

	pdfSectionTitle(pdf, "Vessel")
	pdfKeyValue(pdf, "Name", report.VesselInfo.VesselName)
	pdfKeyValue(pdf, "IMO Number", report.VesselInfo.IMONumber)
	pdfKeyValue(pdf, "Type", report.VesselInfo.VesselType)
	pdfKeyValue(pdf, "Flag State", report.VesselInfo.FlagState)
	pdfKeyValue(pdf, "Route", strings.Join(report.RoutePorts, " - "))
	pdf.Ln(4)

	pdfSectionTitle(pdf, "Executive Summary")
	pdfKeyValue(pdf, "Overall Status", strings.ToUpper(string(report.Summary.OverallStatus)))
	pdfKeyValue(pdf, "Compliance Score", strconv.Itoa(report.Summary.ComplianceScore))
	pdfKeyValue(pdf, "Risk Level", strings.ToUpper(string(report.Summary.RiskLevel)))
	pdfKeyValue(pdf, "Detention Risk", strings.ToUpper(string(report.DetentionRisk)))
	pdfKeyValue(pdf, "Time to Compliance", report.Summary.EstimatedTimeToCompliance)
	for _, finding := range report.Summary.KeyFindings {
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, "- "+finding, "", "L", false)
	}
	pdf.Ln(4)

	pdfSectionTitle(pdf, "Document Analysis")
	docs := report.DocumentAnalysis
	pdfKeyValue(pdf, "Required", strconv.Itoa(docs.TotalRequired))
	pdfKeyValue(pdf, "Available", strconv.Itoa(docs.TotalAvailable))
	pdfKeyValue(pdf, "Compliance", fmt.Sprintf("%.1f%%", docs.CompliancePercentage))
	for _, doc := range documentRows(docs) {
		if doc.Status == compliance.DocumentValid {
			continue
		}
		pdf.SetFont("Arial", "", 9)
		line := fmt.Sprintf("- [%s] %s", strings.ToUpper(string(doc.Status)), doc.DocumentType)
		if doc.ActionRequired != "" {
			line += ": " + doc.ActionRequired
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	if len(report.RiskAssessments) > 0 {
		pdfSectionTitle(pdf, "Risk Assessments")
		for _, risk := range report.RiskAssessments {
			pdf.SetFont("Arial", "B", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s (%s)", risk.RiskArea, strings.ToUpper(string(risk.RiskLevel))), "", "L", false)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, "Mitigation: "+risk.Mitigation, "", "L", false)
		}
		pdf.Ln(4)
	}

	actions := report.AllActions()
	if len(actions) > 0 {
		pdfSectionTitle(pdf, "Action Plan")
		for _, a := range actions {
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s [%s] %s (deadline: %s)",
				a.ActionID, strings.ToUpper(string(a.Priority)), a.Action, a.Deadline), "", "L", false)
		}
	}

	if len(report.ComplianceTimeline) > 0 {
		pdf.Ln(4)
		pdfSectionTitle(pdf, "Compliance Timeline")
		for _, phase := range report.ComplianceTimeline {
			pdf.SetFont("Arial", "B", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s (deadline: %s)", phase.Phase, phase.Deadline), "", "L", false)
			pdf.SetFont("Arial", "", 9)
			for _, action := range phase.Actions {
				pdf.MultiCell(0, 5, "- "+action, "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF for report %s: %w", report.ReportID, err)
	}
	return buf.Bytes(), nil
}

func pdfSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func pdfKeyValue(pdf *gofpdf.Fpdf, key, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(45, 5, key)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, value, "", "L", false)
}
