package compliance

import "fmt"

// ActionPlanner turns gap analysis and route findings into a numbered,
// prioritized list of actions
type ActionPlanner struct{}

// NewActionPlanner creates an action planner
func NewActionPlanner() *ActionPlanner {
	return &ActionPlanner{}
}

// Plan builds the action list. Actions are numbered ACT-0001 upward in
// emission order: expired renewals, missing documents, scheduled
// renewals, then fuel and emissions verifications.
func (ap *ActionPlanner) Plan(docs DocumentGapAnalysis, route RouteComplianceCheck) []ActionItem {
	actions := []ActionItem{}
	nextID := actionSequence()

	for _, doc := range docs.ExpiredDocuments {
		daysAgo := 0
		if doc.DaysUntilExpiry != nil {
			daysAgo = -*doc.DaysUntilExpiry
		}
		actions = append(actions, ActionItem{
			ActionID:            nextID(),
			Priority:            PriorityCritical,
			Category:            "Document",
			Action:              "RENEW: " + doc.DocumentType,
			Reason:              fmt.Sprintf("Certificate expired %d days ago", daysAgo),
			RegulationReference: doc.RegulationSource,
			Deadline:            "Immediately - before departure",
			ResponsibleParty:    "Ship Manager / DPA",
			PortsAffected:       route.Route,
		})
	}

	for _, doc := range docs.MissingDocuments {
		priority := PriorityMedium
		if doc.Priority == PriorityCritical {
			priority = PriorityHigh
		}
		ports := doc.PortsRequiring
		if len(ports) == 0 {
			ports = route.Route
		}
		actions = append(actions, ActionItem{
			ActionID:            nextID(),
			Priority:            priority,
			Category:            "Document",
			Action:              "OBTAIN: " + doc.DocumentType,
			Reason:              "Required by " + doc.RegulationSource,
			RegulationReference: doc.RegulationSource,
			Deadline:            "Before departure",
			ResponsibleParty:    "Ship Manager",
			PortsAffected:       ports,
		})
	}

	for _, doc := range docs.ExpiringSoon {
		days := 0
		if doc.DaysUntilExpiry != nil {
			days = *doc.DaysUntilExpiry
		}
		priority := PriorityMedium
		if days <= 14 {
			priority = PriorityHigh
		}
		actions = append(actions, ActionItem{
			ActionID:            nextID(),
			Priority:            priority,
			Category:            "Document",
			Action:              "SCHEDULE RENEWAL: " + doc.DocumentType,
			Reason:              fmt.Sprintf("Expires in %d days (on %s)", days, doc.ExpiryDate),
			RegulationReference: doc.RegulationSource,
			Deadline:            fmt.Sprintf("Before %s", doc.ExpiryDate),
			ResponsibleParty:    "Ship Manager",
		})
	}

	if len(route.ECAPorts) > 0 {
		actions = append(actions, ActionItem{
			ActionID:            nextID(),
			Priority:            PriorityHigh,
			Category:            "Fuel",
			Action:              "VERIFY ECA FUEL COMPLIANCE",
			Reason:              "Route includes ECA zones requiring 0.10% sulphur fuel",
			RegulationReference: "MARPOL Annex VI Reg 14",
			Deadline:            "Before entering ECA",
			ResponsibleParty:    "Chief Engineer",
			PortsAffected:       route.ECAPorts,
		})
	}

	if len(route.EUPorts) > 0 {
		actions = append(actions, ActionItem{
			ActionID:            nextID(),
			Priority:            PriorityMedium,
			Category:            "Emissions",
			Action:              "VERIFY EU MRV MONITORING PLAN",
			Reason:              "Route includes EU ports subject to MRV/ETS requirements",
			RegulationReference: "EU Regulation 2015/757",
			Deadline:            "Before EU port call",
			ResponsibleParty:    "Ship Manager / Environmental Officer",
			PortsAffected:       route.EUPorts,
		})
	}

	return actions
}

// Private methods

func actionSequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ACT-%04d", n)
	}
}
