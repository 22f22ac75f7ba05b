package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

// ErrReportNotFound is returned when a report ID has no stored report.
var ErrReportNotFound = errors.New("report not found")

// ReportRecord is the listing row kept alongside each stored report.
type ReportRecord struct {
	ReportID        string                      `json:"report_id"`
	VesselName      string                      `json:"vessel_name"`
	IMONumber       string                      `json:"imo_number,omitempty"`
	RoutePorts      []string                    `json:"route_ports"`
	OverallStatus   compliance.ComplianceStatus `json:"overall_status"`
	ComplianceScore int                         `json:"compliance_score"`
	RiskLevel       compliance.RiskLevel        `json:"risk_level"`
	GeneratedAt     time.Time                   `json:"generated_at"`
	ValidUntil      time.Time                   `json:"valid_until"`
}

type storedReport struct {
	raw    []byte
	record ReportRecord
}

// ReportStore keeps generated reports in memory keyed by report ID.
// Reports are stored as marshaled snapshots; Get returns a fresh copy so
// callers can never mutate what was stored.
type ReportStore struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	reports map[string]storedReport
	order   []string
}

// NewReportStore creates an empty report store.
func NewReportStore(logger *zap.Logger) *ReportStore {
	return &ReportStore{
		logger:  logger,
		reports: make(map[string]storedReport),
	}
}

// Put stores a snapshot of the report. Storing an ID that already exists
// replaces the previous snapshot in place.
func (s *ReportStore) Put(report *compliance.ComplianceReport) error {
	if report == nil || report.ReportID == "" {
		return errors.New("report must have a report ID")
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report %s: %w", report.ReportID, err)
	}

	record := ReportRecord{
		ReportID:        report.ReportID,
		VesselName:      report.VesselInfo.VesselName,
		IMONumber:       report.VesselInfo.IMONumber,
		RoutePorts:      append([]string(nil), report.RoutePorts...),
		OverallStatus:   report.Summary.OverallStatus,
		ComplianceScore: report.Summary.ComplianceScore,
		RiskLevel:       report.Summary.RiskLevel,
		GeneratedAt:     report.GeneratedAt,
		ValidUntil:      report.ValidUntil,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reports[report.ReportID]; !exists {
		s.order = append(s.order, report.ReportID)
	}
	s.reports[report.ReportID] = storedReport{raw: raw, record: record}

	s.logger.Debug("Report stored",
		zap.String("report_id", report.ReportID),
		zap.Int("stored_reports", len(s.reports)))
	return nil
}

// Get returns a fresh copy of the stored report.
func (s *ReportStore) Get(reportID string) (*compliance.ComplianceReport, error) {
	s.mu.RLock()
	stored, exists := s.reports[reportID]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}

	var report compliance.ComplianceReport
	if err := json.Unmarshal(stored.raw, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", reportID, err)
	}
	return &report, nil
}

// Raw returns the stored JSON snapshot of the report.
func (s *ReportStore) Raw(reportID string) ([]byte, error) {
	s.mu.RLock()
	stored, exists := s.reports[reportID]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}
	return append([]byte(nil), stored.raw...), nil
}

// List returns listing records for all stored reports, newest first.
func (s *ReportStore) List() []ReportRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]ReportRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if stored, exists := s.reports[s.order[i]]; exists {
			records = append(records, stored.record)
		}
	}
	return records
}

// Delete removes a stored report.
func (s *ReportStore) Delete(reportID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reports[reportID]; !exists {
		return fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}

	delete(s.reports, reportID)
	for i, id := range s.order {
		if id == reportID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Debug("Report deleted", zap.String("report_id", reportID))
	return nil
}

// Len returns the number of stored reports.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// PurgeExpired removes reports whose validity window ended before now and
// returns how many were removed.
func (s *ReportStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		stored, exists := s.reports[id]
		if exists && stored.record.ValidUntil.Before(now) {
			delete(s.reports, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept

	if removed > 0 {
		s.logger.Info("Purged expired reports",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.reports)))
	}
	return removed
}
