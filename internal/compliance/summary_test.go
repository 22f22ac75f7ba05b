package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize(t *testing.T) {
	summarizer := NewSummarizer()

	t.Run("Fully Compliant", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			TotalRequired:        17,
			TotalAvailable:       17,
			CompliancePercentage: 100.0,
			ValidDocuments:       checkResults(17, DocumentValid),
		}

		summary := summarizer.Summarize(docs, nil, nil)

		assert.Equal(t, StatusCompliant, summary.OverallStatus)
		assert.Equal(t, 100, summary.ComplianceScore)
		assert.Equal(t, RiskLow, summary.RiskLevel)
		assert.Empty(t, summary.KeyFindings)
		assert.Empty(t, summary.ImmediateActions)
		assert.Equal(t, 17, summary.ValidCertificates)
		assert.Equal(t, "Already compliant or minor actions only", summary.EstimatedTimeToCompliance)
	})

	t.Run("Expired Forces Non Compliant And Penalty", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			TotalRequired:        17,
			TotalAvailable:       16,
			CompliancePercentage: 94.1,
			ValidDocuments:       checkResults(16, DocumentValid),
			ExpiredDocuments:     checkResults(1, DocumentExpired),
		}
		risks := []RiskAssessment{{RiskArea: "PSC Detention - Expired Certificates", RiskLevel: RiskCritical}}
		actions := []ActionItem{{Action: "RENEW: Certificate", Priority: PriorityCritical}}

		summary := summarizer.Summarize(docs, risks, actions)

		assert.Equal(t, StatusNonCompliant, summary.OverallStatus)
		assert.Equal(t, 74, summary.ComplianceScore, "int(94.1) minus the 20 point penalty")
		assert.Equal(t, RiskCritical, summary.RiskLevel)
		assert.Contains(t, summary.KeyFindings, "1 certificate(s) have expired and require immediate renewal")
		assert.Contains(t, summary.KeyFindings, "Risk: PSC Detention - Expired Certificates")
		assert.Equal(t, []string{"RENEW: Certificate"}, summary.ImmediateActions)
	})

	t.Run("Score Never Goes Negative", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			TotalRequired:        17,
			CompliancePercentage: 5.9,
			ExpiredDocuments:     checkResults(1, DocumentExpired),
		}

		summary := summarizer.Summarize(docs, nil, nil)

		assert.Equal(t, 0, summary.ComplianceScore)
	})

	t.Run("Missing Or Expiring Means Partial", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			TotalRequired:        17,
			CompliancePercentage: 0.0,
			MissingDocuments:     checkResults(17, DocumentMissing),
		}
		risks := []RiskAssessment{{RiskArea: "PSC Detention - Missing Documents", RiskLevel: RiskHigh}}

		summary := summarizer.Summarize(docs, risks, nil)

		assert.Equal(t, StatusPartial, summary.OverallStatus, "missing documents alone never force non-compliance")
		assert.Equal(t, RiskHigh, summary.RiskLevel)
		assert.Equal(t, 17, summary.MissingCertificates)
		assert.Contains(t, summary.KeyFindings, "17 required document(s) not on file")
	})

	t.Run("Risk Findings Come From Top Two Risks Only", func(t *testing.T) {
		risks := []RiskAssessment{
			{RiskArea: "First", RiskLevel: RiskMedium},
			{RiskArea: "Second", RiskLevel: RiskHigh},
			{RiskArea: "Third", RiskLevel: RiskCritical},
		}

		summary := summarizer.Summarize(DocumentGapAnalysis{}, risks, nil)

		assert.Contains(t, summary.KeyFindings, "Risk: Second")
		assert.NotContains(t, summary.KeyFindings, "Risk: First", "medium risks are not findings")
		assert.NotContains(t, summary.KeyFindings, "Risk: Third", "only the first two risks are considered")
	})

	t.Run("Findings Cap At Five", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			ExpiredDocuments: checkResults(1, DocumentExpired),
			ExpiringSoon:     checkResults(2, DocumentExpiringSoon),
			MissingDocuments: checkResults(3, DocumentMissing),
		}
		risks := []RiskAssessment{
			{RiskArea: "One", RiskLevel: RiskCritical},
			{RiskArea: "Two", RiskLevel: RiskHigh},
		}

		summary := summarizer.Summarize(docs, risks, nil)

		assert.Len(t, summary.KeyFindings, 5)
	})

	t.Run("Immediate Actions Cap At Five", func(t *testing.T) {
		actions := make([]ActionItem, 7)
		for i := range actions {
			actions[i] = ActionItem{Action: "RENEW", Priority: PriorityCritical}
		}

		summary := summarizer.Summarize(DocumentGapAnalysis{}, nil, actions)

		assert.Len(t, summary.ImmediateActions, 5)
	})

	t.Run("Estimate Scales With Counts", func(t *testing.T) {
		critical := []ActionItem{
			{Priority: PriorityCritical}, {Priority: PriorityCritical}, {Priority: PriorityHigh},
		}
		summary := summarizer.Summarize(DocumentGapAnalysis{}, nil, critical)
		assert.Equal(t, "4-10 days (requires immediate action)", summary.EstimatedTimeToCompliance)

		high := []ActionItem{{Priority: PriorityHigh}, {Priority: PriorityHigh}}
		summary = summarizer.Summarize(DocumentGapAnalysis{}, nil, high)
		assert.Equal(t, "2-6 weeks", summary.EstimatedTimeToCompliance)
	})
}

func TestSummarizer_DetentionRisk(t *testing.T) {
	summarizer := NewSummarizer()

	cases := []struct {
		name string
		docs DocumentGapAnalysis
		want RiskLevel
	}{
		{"Expired Is Critical", DocumentGapAnalysis{ExpiredDocuments: checkResults(1, DocumentExpired)}, RiskCritical},
		{"Many Missing Is High", DocumentGapAnalysis{MissingDocuments: checkResults(4, DocumentMissing)}, RiskHigh},
		{"Few Missing Is Medium", DocumentGapAnalysis{MissingDocuments: checkResults(3, DocumentMissing)}, RiskMedium},
		{"Expiring Is Medium", DocumentGapAnalysis{ExpiringSoon: checkResults(1, DocumentExpiringSoon)}, RiskMedium},
		{"Clean Is Low", DocumentGapAnalysis{}, RiskLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, summarizer.DetentionRisk(tc.docs))
		})
	}
}

func TestSummarizer_ExpiredOutranksMissingDetention(t *testing.T) {
	summarizer := NewSummarizer()

	docs := DocumentGapAnalysis{
		ExpiredDocuments: checkResults(1, DocumentExpired),
		MissingDocuments: checkResults(10, DocumentMissing),
	}

	require.Equal(t, RiskCritical, summarizer.DetentionRisk(docs))
}
