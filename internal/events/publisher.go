package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

// ReportGeneratedEvent is the envelope published after every generation run
type ReportGeneratedEvent struct {
	ReportID        string                      `json:"report_id"`
	VesselName      string                      `json:"vessel_name"`
	IMONumber       string                      `json:"imo_number,omitempty"`
	OverallStatus   compliance.ComplianceStatus `json:"overall_status"`
	ComplianceScore int                         `json:"compliance_score"`
	DetentionRisk   compliance.RiskLevel        `json:"detention_risk"`
	GeneratedAt     time.Time                   `json:"generated_at"`
}

// Publisher emits report lifecycle events
type Publisher interface {
	PublishReportGenerated(ctx context.Context, report *compliance.ComplianceReport) error
	Close() error
}

// KafkaPublisher writes report events to a Kafka topic
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher writing to the given brokers and topic
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// PublishReportGenerated emits a report.generated event keyed by report ID.
func (p *KafkaPublisher) PublishReportGenerated(ctx context.Context, report *compliance.ComplianceReport) error {
	event := ReportGeneratedEvent{
		ReportID:        report.ReportID,
		VesselName:      report.VesselInfo.VesselName,
		IMONumber:       report.VesselInfo.IMONumber,
		OverallStatus:   report.Summary.OverallStatus,
		ComplianceScore: report.Summary.ComplianceScore,
		DetentionRisk:   report.DetentionRisk,
		GeneratedAt:     report.GeneratedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode report event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(report.ReportID),
		Value: payload,
		Time:  report.GeneratedAt,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish report event %s: %w", report.ReportID, err)
	}

	p.logger.Debug("Report event published",
		zap.String("report_id", report.ReportID),
		zap.String("topic", p.writer.Topic))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when event publishing is disabled
type NopPublisher struct{}

// PublishReportGenerated does nothing.
func (NopPublisher) PublishReportGenerated(ctx context.Context, report *compliance.ComplianceReport) error {
	return nil
}

// Close does nothing.
func (NopPublisher) Close() error {
	return nil
}
