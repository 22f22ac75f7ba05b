package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

// RenderXLSX renders the report as an XLSX workbook with Summary,
// Documents, Actions and Route sheets.
func (r *Renderer) RenderXLSX(report *compliance.ComplianceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return nil, err
	}
	if err := writeDocumentsSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeActionsSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeRouteSheet(f, report); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render XLSX for report %s: %w", report.ReportID, err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, report *compliance.ComplianceReport) error {
	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Report ID", report.ReportID},
		{"Vessel", report.VesselInfo.VesselName},
		{"IMO Number", report.VesselInfo.IMONumber},
		{"Vessel Type", report.VesselInfo.VesselType},
		{"Generated At", report.GeneratedAt.Format("2006-01-02 15:04 UTC")},
		{"Valid Until", report.ValidUntil.Format("2006-01-02")},
		{"Overall Status", string(report.Summary.OverallStatus)},
		{"Compliance Score", report.Summary.ComplianceScore},
		{"Risk Level", string(report.Summary.RiskLevel)},
		{"Detention Risk", string(report.DetentionRisk)},
		{"Valid Certificates", report.Summary.ValidCertificates},
		{"Expiring Certificates", report.Summary.ExpiringCertificates},
		{"Missing Certificates", report.Summary.MissingCertificates},
		{"Time to Compliance", report.Summary.EstimatedTimeToCompliance},
	}
	for i, finding := range report.Summary.KeyFindings {
		rows = append(rows, []interface{}{fmt.Sprintf("Finding %d", i+1), finding})
	}

	return writeRows(f, sheet, rows)
}

func writeDocumentsSheet(f *excelize.File, report *compliance.ComplianceReport) error {
	const sheet = "Documents"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Document Type", "Status", "Expiry Date", "Days Until Expiry", "Regulation", "Priority", "Action Required"},
	}
	for _, doc := range documentRows(report.DocumentAnalysis) {
		expiry := ""
		if doc.ExpiryDate != nil {
			expiry = doc.ExpiryDate.String()
		}
		var days interface{}
		if doc.DaysUntilExpiry != nil {
			days = *doc.DaysUntilExpiry
		}
		rows = append(rows, []interface{}{
			doc.DocumentType, string(doc.Status), expiry, days,
			doc.RegulationSource, string(doc.Priority), doc.ActionRequired,
		})
	}

	return writeRows(f, sheet, rows)
}

func writeActionsSheet(f *excelize.File, report *compliance.ComplianceReport) error {
	const sheet = "Actions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Action ID", "Priority", "Category", "Action", "Reason", "Deadline", "Responsible Party", "Ports Affected"},
	}
	for _, a := range report.AllActions() {
		rows = append(rows, []interface{}{
			a.ActionID, string(a.Priority), a.Category, a.Action,
			a.Reason, a.Deadline, a.ResponsibleParty, strings.Join(a.PortsAffected, ", "),
		})
	}

	return writeRows(f, sheet, rows)
}

func writeRouteSheet(f *excelize.File, report *compliance.ComplianceReport) error {
	const sheet = "Route"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Port Code", "Port Name", "Country", "PSC Regime", "Advance Notice (h)", "ECA Zone", "Sulphur Limit", "Scrubber Allowed", "Special Requirements"},
	}
	for _, code := range report.RoutePorts {
		req, ok := report.RouteCompliance.PortRequirements[code]
		if !ok {
			continue
		}
		var limit interface{}
		if req.SulphurLimit != nil {
			limit = *req.SulphurLimit
		}
		rows = append(rows, []interface{}{
			req.PortCode, req.PortName, req.Country, req.PSCRegime,
			req.AdvanceNoticeHours, req.ECAZone, limit, req.ScrubberAllowed,
			strings.Join(req.SpecialRequirements, "; "),
		})
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d on %s: %w", i+1, sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
