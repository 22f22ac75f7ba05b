package compliance

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/knowledge"
)

const (
	// Reports stay valid for this many days after generation
	reportValidityDays = 30

	// Knowledge base queries in flight at once during route fan-out,
	// unless overridden with WithSearchWorkers
	defaultSearchWorkers = 4
)

// Generator runs the full compliance analysis for a vessel and route and
// assembles immutable reports
type Generator struct {
	catalog   *Catalog
	atlas     *PortAtlas
	documents *DocumentAnalyzer
	route     *RouteAnalyzer
	regional  *RegionalRules
	risks     *RiskAssessor
	actions   *ActionPlanner
	summary   *Summarizer
	searcher  knowledge.RequirementSearcher
	logger    *zap.Logger

	searchWorkers int
	now           func() time.Time
}

// GeneratorOption adjusts generator construction.
type GeneratorOption func(*Generator)

// WithSearchWorkers sets the number of knowledge base queries kept in
// flight during the route fan-out. Values below one are ignored.
func WithSearchWorkers(n int) GeneratorOption {
	return func(g *Generator) {
		if n >= 1 {
			g.searchWorkers = n
		}
	}
}

// NewGenerator wires the analysis components around the given searcher
func NewGenerator(searcher knowledge.RequirementSearcher, logger *zap.Logger, opts ...GeneratorOption) *Generator {
	catalog := NewCatalog()
	atlas := NewPortAtlas()
	g := &Generator{
		catalog:   catalog,
		atlas:     atlas,
		documents: NewDocumentAnalyzer(catalog, logger),
		route:     NewRouteAnalyzer(atlas),
		regional:  NewRegionalRules(atlas),
		risks:     NewRiskAssessor(),
		actions:   NewActionPlanner(),
		summary:   NewSummarizer(),
		searcher:  searcher,
		logger:    logger,

		searchWorkers: defaultSearchWorkers,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the certificate catalog the generator analyzes against.
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Atlas returns the port atlas the generator analyzes against.
func (g *Generator) Atlas() *PortAtlas {
	return g.atlas
}

// GenerateReport runs the full analysis and assembles a report. The
// deterministic analysis never fails; knowledge base lookups that error
// are logged and yield empty requirement lists.
func (g *Generator) GenerateReport(ctx context.Context, vessel VesselInfo, routePorts []string, onFile []OnFileDocument, voyageStart *Date) (*ComplianceReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vessel = withVesselDefaults(vessel)
	now := g.now()
	today := DateOf(now)

	docs := g.documents.Analyze(vessel.VesselType, onFile, today)
	route := g.route.Analyze(routePorts)

	imoReqs := g.imoRequirements(ctx, vessel.VesselType)
	regionalReqs := g.regional.Applicable(routePorts)
	portReqs := g.portRequirements(ctx, routePorts, vessel.VesselType)

	risks := g.risks.Assess(docs, route)
	actions := g.actions.Plan(docs, route)

	report := &ComplianceReport{
		ReportID:        newReportID(now),
		GeneratedAt:     now,
		ValidUntil:      now.AddDate(0, 0, reportValidityDays),
		VesselInfo:      vessel,
		RoutePorts:      append([]string(nil), routePorts...),
		VoyageStartDate: voyageStart,

		Summary:          g.summary.Summarize(docs, risks, actions),
		DocumentAnalysis: docs,
		RouteCompliance:  route,

		IMORequirements:          imoReqs,
		RegionalRequirements:     regionalReqs,
		PortSpecificRequirements: portReqs,

		RiskAssessments: risks,
		DetentionRisk:   g.summary.DetentionRisk(docs),

		CriticalActions:       []ActionItem{},
		HighPriorityActions:   []ActionItem{},
		MediumPriorityActions: []ActionItem{},
		LowPriorityActions:    []ActionItem{},

		ComplianceTimeline: BuildTimeline(actions, voyageStart),
	}

	for _, a := range actions {
		switch a.Priority {
		case PriorityCritical:
			report.CriticalActions = append(report.CriticalActions, a)
		case PriorityHigh:
			report.HighPriorityActions = append(report.HighPriorityActions, a)
		case PriorityMedium:
			report.MediumPriorityActions = append(report.MediumPriorityActions, a)
		default:
			report.LowPriorityActions = append(report.LowPriorityActions, a)
		}
	}

	g.logger.Info("Compliance report generated",
		zap.String("report_id", report.ReportID),
		zap.String("vessel_name", vessel.VesselName),
		zap.Int("route_ports", len(routePorts)),
		zap.String("overall_status", string(report.Summary.OverallStatus)))

	return report, nil
}

// QuickCheck runs the deterministic part of the analysis and returns a
// compact go/no-go answer without knowledge base lookups.
func (g *Generator) QuickCheck(vessel VesselInfo, routePorts []string, onFile []OnFileDocument) QuickComplianceCheck {
	vessel = withVesselDefaults(vessel)
	today := DateOf(g.now())

	docs := g.documents.Analyze(vessel.VesselType, onFile, today)
	route := g.route.Analyze(routePorts)
	risks := g.risks.Assess(docs, route)
	actions := g.actions.Plan(docs, route)
	summary := g.summary.Summarize(docs, risks, actions)

	critical := []string{}
	for _, doc := range docs.ExpiredDocuments {
		critical = append(critical, "RENEW: "+doc.DocumentType)
	}
	for _, doc := range docs.MissingDocuments {
		if doc.Priority == PriorityCritical {
			critical = append(critical, "OBTAIN: "+doc.DocumentType)
		}
	}

	warnings := []string{}
	for _, doc := range docs.ExpiringSoon {
		days := 0
		if doc.DaysUntilExpiry != nil {
			days = *doc.DaysUntilExpiry
		}
		warnings = append(warnings, fmt.Sprintf("%s expires in %d days", doc.DocumentType, days))
	}
	if len(route.ECAPorts) > 0 {
		warnings = append(warnings, "Route includes ECA zones requiring 0.10% sulphur fuel")
	}
	if len(route.EUPorts) > 0 {
		warnings = append(warnings, "Route includes EU ports subject to MRV/ETS requirements")
	}

	recommendations := []string{}
	for _, a := range actions {
		recommendations = append(recommendations, a.Action)
		if len(recommendations) == 5 {
			break
		}
	}

	return QuickComplianceCheck{
		VesselName:      vessel.VesselName,
		Route:           append([]string(nil), routePorts...),
		OverallStatus:   summary.OverallStatus,
		RiskLevel:       summary.RiskLevel,
		CriticalIssues:  critical,
		Warnings:        warnings,
		Recommendations: recommendations,
	}
}

// PortBrief assembles the requirement picture for a single port call.
// An empty vesselClass marks the regulations as applying to all vessels.
func (g *Generator) PortBrief(ctx context.Context, portCode, vesselClass string) PortBrief {
	requirement := g.atlas.Describe(portCode)
	if vesselClass == "" {
		vesselClass = "All vessels"
	}

	regulations := []RegulationRequirement{}
	results, err := g.searcher.Search(ctx, portQuery(portCode))
	if err != nil {
		g.logger.Warn("Port requirement lookup failed",
			zap.String("port_code", portCode), zap.Error(err))
	} else {
		for i, r := range results {
			regulations = append(regulations, portRegulation(portCode, i, r, vesselClass))
		}
	}

	summary := fmt.Sprintf("%s (%s) falls under %s jurisdiction. Advance notice: %d hours.",
		requirement.PortName, requirement.Country, requirement.PSCRegime, requirement.AdvanceNoticeHours)
	if requirement.ECAZone {
		summary += " The port lies in an emission control area with a 0.10% sulphur limit."
	}

	return PortBrief{
		PortCode:     portCode,
		PortName:     requirement.PortName,
		Requirements: []PortRequirement{requirement},
		Regulations:  regulations,
		Summary:      summary,
	}
}

// Private methods

func (g *Generator) imoRequirements(ctx context.Context, vesselType string) []RegulationRequirement {
	query := knowledge.Query{
		Text:        fmt.Sprintf("IMO requirements %s vessel certificates", vesselType),
		Collections: []string{knowledge.CollectionIMOConventions},
		TopK:        10,
	}

	results, err := g.searcher.Search(ctx, query)
	if err != nil {
		g.logger.Warn("IMO requirement lookup failed", zap.Error(err))
		return []RegulationRequirement{}
	}

	reqs := make([]RegulationRequirement, 0, len(results))
	for i, r := range results {
		reqs = append(reqs, RegulationRequirement{
			RequirementID:     fmt.Sprintf("IMO-%03d", i+1),
			Regulation:        metadataOr(r.Metadata, knowledge.MetaConvention, "IMO"),
			Title:             metadataOr(r.Metadata, knowledge.MetaChapterTitle, "IMO Requirement"),
			Description:       truncate(r.Content, 500),
			RequirementType:   "MANDATORY",
			Applicability:     metadataOr(r.Metadata, knowledge.MetaApplicability, "All ships"),
			DocumentsRequired: []string{},
		})
	}
	return reqs
}

func (g *Generator) portRequirements(ctx context.Context, routePorts []string, vesselType string) map[string][]RegulationRequirement {
	queries := make([]knowledge.Query, len(routePorts))
	for i, port := range routePorts {
		queries[i] = portQuery(port)
	}

	outcomes := knowledge.FanOut(ctx, g.searcher, queries, g.searchWorkers)

	portReqs := make(map[string][]RegulationRequirement, len(routePorts))
	for i, port := range routePorts {
		outcome := outcomes[i]
		if outcome.Err != nil {
			g.logger.Warn("Port requirement lookup failed",
				zap.String("port_code", port), zap.Error(outcome.Err))
			portReqs[port] = []RegulationRequirement{}
			continue
		}
		reqs := make([]RegulationRequirement, 0, len(outcome.Results))
		for j, r := range outcome.Results {
			reqs = append(reqs, portRegulation(port, j, r, vesselType))
		}
		portReqs[port] = reqs
	}
	return portReqs
}

func portQuery(portCode string) knowledge.Query {
	return knowledge.Query{
		Text:        fmt.Sprintf("Port %s requirements regulations", portCode),
		Collections: []string{knowledge.CollectionPortRegulations, knowledge.CollectionCustomsDocs},
		TopK:        5,
	}
}

func portRegulation(portCode string, index int, r knowledge.SearchResult, applicability string) RegulationRequirement {
	return RegulationRequirement{
		RequirementID:     fmt.Sprintf("%s-%03d", portCode, index+1),
		Regulation:        metadataOr(r.Metadata, knowledge.MetaSource, "Port Authority"),
		Title:             "Port Requirement: " + metadataOr(r.Metadata, knowledge.MetaRequirementName, "Local Requirement"),
		Description:       truncate(r.Content, 300),
		RequirementType:   metadataOr(r.Metadata, knowledge.MetaRequirementType, "MANDATORY"),
		Applicability:     applicability,
		DocumentsRequired: []string{},
	}
}

func withVesselDefaults(vessel VesselInfo) VesselInfo {
	if vessel.VesselName == "" {
		vessel.VesselName = "Unknown Vessel"
	}
	if vessel.VesselType == "" {
		vessel.VesselType = VesselClassCargoShip
	}
	if vessel.FlagState == "" {
		vessel.FlagState = "Unknown"
	}
	return vessel
}

func newReportID(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("CR-%s-%s", now.Format("20060102"),
		strings.ToUpper(hex.EncodeToString(id[:3])))
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if v := metadata[key]; v != "" {
		return v
	}
	return fallback
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
