package compliance

import "fmt"

// Missing more than this many documents raises the detention risk a level
const missingDocsHighThreshold = 3

// RiskAssessor derives voyage risks from the document gap analysis and
// the route classification
type RiskAssessor struct{}

// NewRiskAssessor creates a risk assessor
func NewRiskAssessor() *RiskAssessor {
	return &RiskAssessor{}
}

// Assess returns the risks for a voyage, document risks first, then zone
// risks.
func (r *RiskAssessor) Assess(docs DocumentGapAnalysis, route RouteComplianceCheck) []RiskAssessment {
	risks := []RiskAssessment{}

	if len(docs.ExpiredDocuments) > 0 {
		risks = append(risks, RiskAssessment{
			RiskArea:      "PSC Detention - Expired Certificates",
			RiskLevel:     RiskCritical,
			Probability:   "High",
			Impact:        fmt.Sprintf("Ship may be detained at port. %d expired certificate(s) found.", len(docs.ExpiredDocuments)),
			Mitigation:    "Renew all expired certificates before departure.",
			AffectedPorts: route.Route,
		})
	}

	if missing := len(docs.MissingDocuments); missing > 0 {
		level, probability := RiskMedium, "Medium"
		if missing > missingDocsHighThreshold {
			level, probability = RiskHigh, "High"
		}
		risks = append(risks, RiskAssessment{
			RiskArea:      "PSC Detention - Missing Documents",
			RiskLevel:     level,
			Probability:   probability,
			Impact:        fmt.Sprintf("%d required document(s) not on file. May result in detention or delays.", missing),
			Mitigation:    "Obtain all missing documents before voyage.",
			AffectedPorts: route.Route,
		})
	}

	if len(docs.ExpiringSoon) > 0 {
		risks = append(risks, RiskAssessment{
			RiskArea:      "Certificate Validity During Voyage",
			RiskLevel:     RiskMedium,
			Probability:   "Medium",
			Impact:        fmt.Sprintf("%d certificate(s) may expire during voyage.", len(docs.ExpiringSoon)),
			Mitigation:    "Schedule renewals or ensure surveys completed before relevant port calls.",
			AffectedPorts: route.Route,
		})
	}

	if len(route.ECAPorts) > 0 {
		risks = append(risks, RiskAssessment{
			RiskArea:      "ECA Non-Compliance",
			RiskLevel:     RiskHigh,
			Probability:   "High if not compliant",
			Impact:        "Fines of €10,000-100,000+ for sulphur violations. Possible detention.",
			Mitigation:    "Ensure compliant fuel or operational EGCS for ECA transits.",
			AffectedPorts: route.ECAPorts,
		})
	}

	if len(route.EUPorts) > 0 {
		risks = append(risks, RiskAssessment{
			RiskArea:      "EU ETS Non-Compliance",
			RiskLevel:     RiskMedium,
			Probability:   "Medium",
			Impact:        "Penalty of €100/tonne CO2 for missing allowances. Potential denial of entry after 2 years.",
			Mitigation:    "Ensure EU ETS account is active and sufficient allowances are available.",
			AffectedPorts: route.EUPorts,
		})
	}

	return risks
}
