package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkResults(n int, status DocumentStatus) []DocumentCheckResult {
	out := make([]DocumentCheckResult, n)
	for i := range out {
		out[i] = DocumentCheckResult{DocumentType: "Certificate", Status: status}
	}
	return out
}

func TestRiskAssessor_Assess(t *testing.T) {
	assessor := NewRiskAssessor()

	t.Run("Clean Voyage Has No Risks", func(t *testing.T) {
		risks := assessor.Assess(DocumentGapAnalysis{}, RouteComplianceCheck{Route: []string{"SGSIN"}})
		assert.Empty(t, risks)
	})

	t.Run("Expired Documents Are Critical", func(t *testing.T) {
		docs := DocumentGapAnalysis{ExpiredDocuments: checkResults(2, DocumentExpired)}
		route := RouteComplianceCheck{Route: []string{"SGSIN", "HKHKG"}}

		risks := assessor.Assess(docs, route)

		require.Len(t, risks, 1)
		assert.Equal(t, "PSC Detention - Expired Certificates", risks[0].RiskArea)
		assert.Equal(t, RiskCritical, risks[0].RiskLevel)
		assert.Equal(t, "High", risks[0].Probability)
		assert.Equal(t, "Ship may be detained at port. 2 expired certificate(s) found.", risks[0].Impact)
		assert.Equal(t, []string{"SGSIN", "HKHKG"}, risks[0].AffectedPorts)
	})

	t.Run("Missing Document Level Depends On Count", func(t *testing.T) {
		few := assessor.Assess(DocumentGapAnalysis{MissingDocuments: checkResults(3, DocumentMissing)}, RouteComplianceCheck{})
		require.Len(t, few, 1)
		assert.Equal(t, RiskMedium, few[0].RiskLevel, "three missing documents stay medium")
		assert.Equal(t, "Medium", few[0].Probability)

		many := assessor.Assess(DocumentGapAnalysis{MissingDocuments: checkResults(4, DocumentMissing)}, RouteComplianceCheck{})
		require.Len(t, many, 1)
		assert.Equal(t, RiskHigh, many[0].RiskLevel, "more than three missing documents escalate")
		assert.Equal(t, "High", many[0].Probability)
		assert.Equal(t, "4 required document(s) not on file. May result in detention or delays.", many[0].Impact)
	})

	t.Run("Zone Risks", func(t *testing.T) {
		route := RouteComplianceCheck{
			Route:    []string{"NLRTM"},
			ECAPorts: []string{"NLRTM"},
			EUPorts:  []string{"NLRTM"},
		}

		risks := assessor.Assess(DocumentGapAnalysis{}, route)

		require.Len(t, risks, 2)
		assert.Equal(t, "ECA Non-Compliance", risks[0].RiskArea)
		assert.Equal(t, RiskHigh, risks[0].RiskLevel)
		assert.Equal(t, "High if not compliant", risks[0].Probability)
		assert.Equal(t, []string{"NLRTM"}, risks[0].AffectedPorts)

		assert.Equal(t, "EU ETS Non-Compliance", risks[1].RiskArea)
		assert.Equal(t, RiskMedium, risks[1].RiskLevel)
	})

	t.Run("Risk Order Is Stable", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			ExpiredDocuments: checkResults(1, DocumentExpired),
			MissingDocuments: checkResults(1, DocumentMissing),
			ExpiringSoon:     checkResults(1, DocumentExpiringSoon),
		}
		route := RouteComplianceCheck{
			Route:    []string{"NLRTM"},
			ECAPorts: []string{"NLRTM"},
			EUPorts:  []string{"NLRTM"},
		}

		risks := assessor.Assess(docs, route)

		require.Len(t, risks, 5)
		areas := make([]string, len(risks))
		for i, r := range risks {
			areas[i] = r.RiskArea
		}
		assert.Equal(t, []string{
			"PSC Detention - Expired Certificates",
			"PSC Detention - Missing Documents",
			"Certificate Validity During Voyage",
			"ECA Non-Compliance",
			"EU ETS Non-Compliance",
		}, areas)
	})
}
