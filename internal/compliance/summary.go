package compliance

import "fmt"

// Expired certificates cost this many points off the compliance score
const expiredScorePenalty = 20

// Summarizer produces the executive summary and the detention risk rating
type Summarizer struct{}

// NewSummarizer creates a summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize condenses the analysis into an executive summary.
func (s *Summarizer) Summarize(docs DocumentGapAnalysis, risks []RiskAssessment, actions []ActionItem) ReportSummary {
	status := StatusCompliant
	switch {
	case len(docs.ExpiredDocuments) > 0 || anyRiskAt(risks, RiskCritical):
		status = StatusNonCompliant
	case len(docs.MissingDocuments) > 0 || len(docs.ExpiringSoon) > 0:
		status = StatusPartial
	}

	score := int(docs.CompliancePercentage)
	if len(docs.ExpiredDocuments) > 0 {
		score -= expiredScorePenalty
		if score < 0 {
			score = 0
		}
	}

	riskLevel := RiskLow
	switch {
	case anyRiskAt(risks, RiskCritical):
		riskLevel = RiskCritical
	case anyRiskAt(risks, RiskHigh):
		riskLevel = RiskHigh
	case anyRiskAt(risks, RiskMedium):
		riskLevel = RiskMedium
	}

	findings := []string{}
	if n := len(docs.ExpiredDocuments); n > 0 {
		findings = append(findings, fmt.Sprintf("%d certificate(s) have expired and require immediate renewal", n))
	}
	if n := len(docs.ExpiringSoon); n > 0 {
		findings = append(findings, fmt.Sprintf("%d certificate(s) expiring within 30 days", n))
	}
	if n := len(docs.MissingDocuments); n > 0 {
		findings = append(findings, fmt.Sprintf("%d required document(s) not on file", n))
	}
	// Only the top two risks surface as findings
	for i, risk := range risks {
		if i >= 2 {
			break
		}
		if risk.RiskLevel == RiskCritical || risk.RiskLevel == RiskHigh {
			findings = append(findings, "Risk: "+risk.RiskArea)
		}
	}
	if len(findings) > 5 {
		findings = findings[:5]
	}

	immediate := []string{}
	for _, a := range actions {
		if a.Priority != PriorityCritical {
			continue
		}
		immediate = append(immediate, a.Action)
		if len(immediate) == 5 {
			break
		}
	}

	return ReportSummary{
		OverallStatus:             status,
		ComplianceScore:           score,
		RiskLevel:                 riskLevel,
		KeyFindings:               findings,
		ImmediateActions:          immediate,
		ValidCertificates:         len(docs.ValidDocuments),
		ExpiringCertificates:      len(docs.ExpiringSoon),
		MissingCertificates:       len(docs.MissingDocuments),
		EstimatedTimeToCompliance: estimateTimeToCompliance(actions),
	}
}

// DetentionRisk rates the likelihood of a port state control detention.
func (s *Summarizer) DetentionRisk(docs DocumentGapAnalysis) RiskLevel {
	switch {
	case len(docs.ExpiredDocuments) > 0:
		return RiskCritical
	case len(docs.MissingDocuments) > missingDocsHighThreshold:
		return RiskHigh
	case len(docs.MissingDocuments) > 0 || len(docs.ExpiringSoon) > 0:
		return RiskMedium
	}
	return RiskLow
}

// Private methods

func anyRiskAt(risks []RiskAssessment, level RiskLevel) bool {
	for _, r := range risks {
		if r.RiskLevel == level {
			return true
		}
	}
	return false
}

func estimateTimeToCompliance(actions []ActionItem) string {
	critical, high := 0, 0
	for _, a := range actions {
		switch a.Priority {
		case PriorityCritical:
			critical++
		case PriorityHigh:
			high++
		}
	}
	switch {
	case critical > 0:
		return fmt.Sprintf("%d-%d days (requires immediate action)", critical*2, critical*5)
	case high > 0:
		return fmt.Sprintf("%d-%d weeks", high, high*3)
	}
	return "Already compliant or minor actions only"
}
