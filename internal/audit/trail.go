package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event types recorded by the trail
const (
	EventReportGenerated = "report_generated"
	EventReportExported  = "report_exported"
	EventReportDeleted   = "report_deleted"
	EventQuickCheck      = "quick_check"
)

// Entry is one recorded audit event
type Entry struct {
	EventType  string            `json:"event_type"`
	ReportID   string            `json:"report_id,omitempty"`
	VesselName string            `json:"vessel_name,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Trail records generation and export events. Every event goes to the
// structured log; the most recent ones are kept in a bounded in-memory
// ring for the audit endpoint.
type Trail struct {
	logger *zap.Logger
	size   int

	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
}

// NewTrail creates a trail retaining the most recent size entries
func NewTrail(size int, logger *zap.Logger) *Trail {
	if size <= 0 {
		size = 256
	}
	return &Trail{
		logger:  logger,
		size:    size,
		entries: make([]Entry, size),
	}
}

// Record logs the event and appends it to the ring.
func (t *Trail) Record(eventType, reportID, vesselName string, details map[string]string) {
	entry := Entry{
		EventType:  eventType,
		ReportID:   reportID,
		VesselName: vesselName,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}

	fields := []zap.Field{
		zap.String("event_type", eventType),
		zap.String("report_id", reportID),
		zap.String("vessel_name", vesselName),
	}
	for k, v := range details {
		fields = append(fields, zap.String(k, v))
	}
	t.logger.Info("Audit event", fields...)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[t.next] = entry
	t.next = (t.next + 1) % t.size
	if t.next == 0 {
		t.full = true
	}
}

// Recent returns the retained entries, newest first.
func (t *Trail) Recent() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := t.next
	if t.full {
		count = t.size
	}

	out := make([]Entry, 0, count)
	for i := 1; i <= count; i++ {
		idx := (t.next - i + t.size) % t.size
		out = append(out, t.entries[idx])
	}
	return out
}

// Len returns how many entries the trail currently retains.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.full {
		return t.size
	}
	return t.next
}
