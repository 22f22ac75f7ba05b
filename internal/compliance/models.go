package compliance

import (
	"strings"
	"time"
)

// ComplianceStatus is the overall compliance verdict for a report
type ComplianceStatus string

// Compliance statuses
const (
	StatusCompliant    ComplianceStatus = "compliant"
	StatusPartial      ComplianceStatus = "partial"
	StatusNonCompliant ComplianceStatus = "non_compliant"
)

// Priority is an action item priority level
type Priority string

// Priorities
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// RiskLevel is a risk assessment level
type RiskLevel string

// Risk levels
const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// DocumentStatus is the validity status of a certificate on file
type DocumentStatus string

// Document statuses
const (
	DocumentValid        DocumentStatus = "valid"
	DocumentExpiringSoon DocumentStatus = "expiring_soon"
	DocumentExpired      DocumentStatus = "expired"
	DocumentMissing      DocumentStatus = "missing"
	// DocumentPendingVerification is part of the interchange format for
	// upstream consumers; the analyzer itself never emits it.
	DocumentPendingVerification DocumentStatus = "pending_verification"
)

// Date is a calendar date without a time component, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// DaysUntil returns the number of whole calendar days from today until d.
// Negative when d lies in the past.
func (d Date) DaysUntil(today Date) int {
	return int(d.Sub(today.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON serializes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// VesselInfo describes the vessel a report is generated for
type VesselInfo struct {
	VesselName            string   `json:"vessel_name"`
	IMONumber             string   `json:"imo_number,omitempty"`
	VesselType            string   `json:"vessel_type"`
	FlagState             string   `json:"flag_state"`
	GrossTonnage          *float64 `json:"gross_tonnage,omitempty"`
	YearBuilt             *int     `json:"year_built,omitempty"`
	ClassificationSociety string   `json:"classification_society,omitempty"`
}

// OnFileDocument is a certificate the operator currently holds.
// ExpiryDate is an optional YYYY-MM-DD string; anything unparseable is
// treated as if no expiry was provided.
type OnFileDocument struct {
	DocumentType string `json:"document_type"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
}

// DocumentCheckResult is the outcome of checking one catalog certificate
type DocumentCheckResult struct {
	DocumentType     string         `json:"document_type"`
	Status           DocumentStatus `json:"status"`
	ExpiryDate       *Date          `json:"expiry_date,omitempty"`
	DaysUntilExpiry  *int           `json:"days_until_expiry,omitempty"`
	RegulationSource string         `json:"regulation_source,omitempty"`
	ActionRequired   string         `json:"action_required,omitempty"`
	Priority         Priority       `json:"priority"`
	PortsRequiring   []string       `json:"ports_requiring,omitempty"`
}

// DocumentGapAnalysis partitions the certificate catalog against the
// documents on file
type DocumentGapAnalysis struct {
	TotalRequired        int                   `json:"total_required"`
	TotalAvailable       int                   `json:"total_available"`
	CompliancePercentage float64               `json:"compliance_percentage"`
	ValidDocuments       []DocumentCheckResult `json:"valid_documents"`
	ExpiringSoon         []DocumentCheckResult `json:"expiring_soon"`
	ExpiredDocuments     []DocumentCheckResult `json:"expired_documents"`
	MissingDocuments     []DocumentCheckResult `json:"missing_documents"`
}

// RegulationRequirement is a single regulatory requirement applicable to
// the vessel or route
type RegulationRequirement struct {
	RequirementID     string   `json:"requirement_id"`
	Regulation        string   `json:"regulation"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	RequirementType   string   `json:"requirement_type"`
	Applicability     string   `json:"applicability,omitempty"`
	DocumentsRequired []string `json:"documents_required"`
	Deadline          string   `json:"deadline,omitempty"`
	SourceURL         string   `json:"source_url,omitempty"`
}

// PortRequirement captures the port-call obligations for one port
type PortRequirement struct {
	PortCode            string   `json:"port_code"`
	PortName            string   `json:"port_name"`
	Country             string   `json:"country"`
	PSCRegime           string   `json:"psc_regime"`
	AdvanceNoticeHours  int      `json:"advance_notice_hours"`
	PreArrivalDocuments []string `json:"pre_arrival_documents"`
	ECAZone             bool     `json:"eca_zone"`
	SulphurLimit        *float64 `json:"sulphur_limit,omitempty"`
	ScrubberAllowed     bool     `json:"scrubber_allowed"`
	SpecialRequirements []string `json:"special_requirements"`
}

// RouteComplianceCheck is the zone and port classification for a route
type RouteComplianceCheck struct {
	Route              []string                   `json:"route"`
	PortRequirements   map[string]PortRequirement `json:"port_requirements"`
	CommonRequirements []RegulationRequirement    `json:"common_requirements"`
	ECAPorts           []string                   `json:"eca_ports"`
	EUPorts            []string                   `json:"eu_ports"`
}

// ActionItem is a single required compliance action
type ActionItem struct {
	ActionID            string   `json:"action_id"`
	Priority            Priority `json:"priority"`
	Category            string   `json:"category"`
	Action              string   `json:"action"`
	Reason              string   `json:"reason"`
	RegulationReference string   `json:"regulation_reference,omitempty"`
	Deadline            string   `json:"deadline,omitempty"`
	ResponsibleParty    string   `json:"responsible_party,omitempty"`
	PortsAffected       []string `json:"ports_affected,omitempty"`
	EstimatedCost       string   `json:"estimated_cost,omitempty"`
	EstimatedTime       string   `json:"estimated_time,omitempty"`
}

// RiskAssessment describes one identified compliance risk
type RiskAssessment struct {
	RiskArea          string    `json:"risk_area"`
	RiskLevel         RiskLevel `json:"risk_level"`
	Probability       string    `json:"probability"`
	Impact            string    `json:"impact"`
	Mitigation        string    `json:"mitigation"`
	AffectedPorts     []string  `json:"affected_ports,omitempty"`
	FinancialExposure string    `json:"financial_exposure,omitempty"`
}

// ReportSummary is the executive summary of a compliance report
type ReportSummary struct {
	OverallStatus             ComplianceStatus `json:"overall_status"`
	ComplianceScore           int              `json:"compliance_score"`
	RiskLevel                 RiskLevel        `json:"risk_level"`
	KeyFindings               []string         `json:"key_findings"`
	ImmediateActions          []string         `json:"immediate_actions"`
	ValidCertificates         int              `json:"valid_certificates"`
	ExpiringCertificates      int              `json:"expiring_certificates"`
	MissingCertificates       int              `json:"missing_certificates"`
	EstimatedTimeToCompliance string           `json:"estimated_time_to_compliance,omitempty"`
}

// TimelinePhase is one phase of the compliance timeline
type TimelinePhase struct {
	Phase    string   `json:"phase"`
	Actions  []string `json:"actions"`
	Deadline string   `json:"deadline"`
}

// ComplianceReport is the full, immutable output of a generation run
type ComplianceReport struct {
	ReportID        string     `json:"report_id"`
	GeneratedAt     time.Time  `json:"generated_at"`
	ValidUntil      time.Time  `json:"valid_until"`
	VesselInfo      VesselInfo `json:"vessel_info"`
	RoutePorts      []string   `json:"route_ports"`
	VoyageStartDate *Date      `json:"voyage_start_date,omitempty"`

	Summary          ReportSummary        `json:"summary"`
	DocumentAnalysis DocumentGapAnalysis  `json:"document_analysis"`
	RouteCompliance  RouteComplianceCheck `json:"route_compliance"`

	IMORequirements          []RegulationRequirement            `json:"imo_requirements"`
	RegionalRequirements     []RegulationRequirement            `json:"regional_requirements"`
	PortSpecificRequirements map[string][]RegulationRequirement `json:"port_specific_requirements"`

	RiskAssessments []RiskAssessment `json:"risk_assessments"`
	DetentionRisk   RiskLevel        `json:"detention_risk"`

	CriticalActions       []ActionItem `json:"critical_actions"`
	HighPriorityActions   []ActionItem `json:"high_priority_actions"`
	MediumPriorityActions []ActionItem `json:"medium_priority_actions"`
	LowPriorityActions    []ActionItem `json:"low_priority_actions"`

	ComplianceTimeline []TimelinePhase `json:"compliance_timeline"`
}

// AllActions returns the report's action items in generation order.
func (r *ComplianceReport) AllActions() []ActionItem {
	all := make([]ActionItem, 0,
		len(r.CriticalActions)+len(r.HighPriorityActions)+
			len(r.MediumPriorityActions)+len(r.LowPriorityActions))
	all = append(all, r.CriticalActions...)
	all = append(all, r.HighPriorityActions...)
	all = append(all, r.MediumPriorityActions...)
	all = append(all, r.LowPriorityActions...)
	return all
}

// QuickComplianceCheck is a lightweight go/no-go answer derived from the
// same analysis as the full report
type QuickComplianceCheck struct {
	VesselName      string           `json:"vessel_name"`
	Route           []string         `json:"route"`
	OverallStatus   ComplianceStatus `json:"overall_status"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	CriticalIssues  []string         `json:"critical_issues"`
	Warnings        []string         `json:"warnings"`
	Recommendations []string         `json:"recommendations"`
}

// PortBrief answers a single-port requirements query
type PortBrief struct {
	PortCode     string                  `json:"port_code"`
	PortName     string                  `json:"port_name"`
	Requirements []PortRequirement       `json:"requirements"`
	Regulations  []RegulationRequirement `json:"regulations"`
	Summary      string                  `json:"summary,omitempty"`
}
