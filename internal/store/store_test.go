package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

func testReport(id string, generatedAt time.Time) *compliance.ComplianceReport {
	return &compliance.ComplianceReport{
		ReportID:    id,
		GeneratedAt: generatedAt,
		ValidUntil:  generatedAt.AddDate(0, 0, 30),
		VesselInfo: compliance.VesselInfo{
			VesselName: "MV Northern Light",
			IMONumber:  "9434761",
			VesselType: compliance.VesselClassCargoShip,
			FlagState:  "Panama",
		},
		RoutePorts: []string{"SGSIN", "NLRTM"},
		Summary: compliance.ReportSummary{
			OverallStatus:   compliance.StatusCompliant,
			ComplianceScore: 100,
			RiskLevel:       compliance.RiskLow,
		},
	}
}

func TestReportStore_Unit(t *testing.T) {
	generatedAt := time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)

	t.Run("Put and Get roundtrip", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())

		require.NoError(t, s.Put(testReport("CR-20250601-AB12CD", generatedAt)))

		got, err := s.Get("CR-20250601-AB12CD")
		require.NoError(t, err)
		assert.Equal(t, "CR-20250601-AB12CD", got.ReportID, "should return the stored report")
		assert.Equal(t, "MV Northern Light", got.VesselInfo.VesselName)
		assert.Equal(t, []string{"SGSIN", "NLRTM"}, got.RoutePorts)
		assert.True(t, got.GeneratedAt.Equal(generatedAt), "timestamps should survive the roundtrip")
	})

	t.Run("Get unknown report", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())

		_, err := s.Get("CR-MISSING")
		assert.ErrorIs(t, err, ErrReportNotFound, "unknown IDs should report not found")
	})

	t.Run("Put rejects reports without an ID", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())

		assert.Error(t, s.Put(&compliance.ComplianceReport{}))
		assert.Error(t, s.Put(nil))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("stored reports are immutable", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		require.NoError(t, s.Put(testReport("CR-1", generatedAt)))

		first, err := s.Get("CR-1")
		require.NoError(t, err)
		first.VesselInfo.VesselName = "tampered"
		first.RoutePorts[0] = "XXXXX"

		second, err := s.Get("CR-1")
		require.NoError(t, err)
		assert.Equal(t, "MV Northern Light", second.VesselInfo.VesselName,
			"mutating a retrieved report should not affect the stored snapshot")
		assert.Equal(t, "SGSIN", second.RoutePorts[0])
	})

	t.Run("Put replaces an existing ID in place", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		require.NoError(t, s.Put(testReport("CR-1", generatedAt)))

		updated := testReport("CR-1", generatedAt)
		updated.Summary.OverallStatus = compliance.StatusPartial
		updated.Summary.ComplianceScore = 70
		require.NoError(t, s.Put(updated))

		assert.Equal(t, 1, s.Len())
		got, err := s.Get("CR-1")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusPartial, got.Summary.OverallStatus)

		records := s.List()
		require.Len(t, records, 1)
		assert.Equal(t, 70, records[0].ComplianceScore, "listing record should track the replacement")
	})

	t.Run("List returns newest first", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		require.NoError(t, s.Put(testReport("CR-1", generatedAt)))
		require.NoError(t, s.Put(testReport("CR-2", generatedAt.Add(time.Hour))))
		require.NoError(t, s.Put(testReport("CR-3", generatedAt.Add(2*time.Hour))))

		records := s.List()
		require.Len(t, records, 3)
		assert.Equal(t, "CR-3", records[0].ReportID)
		assert.Equal(t, "CR-2", records[1].ReportID)
		assert.Equal(t, "CR-1", records[2].ReportID)

		assert.Equal(t, "MV Northern Light", records[0].VesselName)
		assert.Equal(t, compliance.StatusCompliant, records[0].OverallStatus)
		assert.Equal(t, compliance.RiskLow, records[0].RiskLevel)
	})

	t.Run("Delete removes a report", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		require.NoError(t, s.Put(testReport("CR-1", generatedAt)))
		require.NoError(t, s.Put(testReport("CR-2", generatedAt)))

		require.NoError(t, s.Delete("CR-1"))
		assert.Equal(t, 1, s.Len())

		_, err := s.Get("CR-1")
		assert.ErrorIs(t, err, ErrReportNotFound)

		records := s.List()
		require.Len(t, records, 1)
		assert.Equal(t, "CR-2", records[0].ReportID)

		assert.ErrorIs(t, s.Delete("CR-1"), ErrReportNotFound, "deleting twice should report not found")
	})

	t.Run("Raw returns the stored JSON snapshot", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		require.NoError(t, s.Put(testReport("CR-1", generatedAt)))

		raw, err := s.Raw("CR-1")
		require.NoError(t, err)

		var decoded compliance.ComplianceReport
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "CR-1", decoded.ReportID)
	})

	t.Run("PurgeExpired removes only stale reports", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())

		stale := testReport("CR-OLD", generatedAt.AddDate(0, -3, 0))
		live := testReport("CR-NEW", generatedAt)
		require.NoError(t, s.Put(stale))
		require.NoError(t, s.Put(live))

		removed := s.PurgeExpired(generatedAt)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, s.Len())

		_, err := s.Get("CR-OLD")
		assert.ErrorIs(t, err, ErrReportNotFound)
		_, err = s.Get("CR-NEW")
		assert.NoError(t, err, "reports still inside their validity window should survive the sweep")

		assert.Equal(t, 0, s.PurgeExpired(generatedAt), "second sweep should find nothing")
	})
}

func TestJanitor_Unit(t *testing.T) {
	t.Run("rejects an invalid schedule", func(t *testing.T) {
		j := NewJanitor(NewReportStore(zap.NewNop()), "not a schedule", zap.NewNop())
		assert.Error(t, j.Start())
	})

	t.Run("sweeps expired reports on demand", func(t *testing.T) {
		s := NewReportStore(zap.NewNop())
		expired := testReport("CR-OLD", time.Now().UTC().AddDate(0, -3, 0))
		require.NoError(t, s.Put(expired))

		j := NewJanitor(s, "@hourly", zap.NewNop())
		assert.Equal(t, 1, j.Sweep())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("start and stop lifecycle", func(t *testing.T) {
		j := NewJanitor(NewReportStore(zap.NewNop()), "@hourly", zap.NewNop())
		require.NoError(t, j.Start())
		j.Stop()
	})
}
