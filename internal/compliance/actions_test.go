package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestActionPlanner_Plan(t *testing.T) {
	planner := NewActionPlanner()

	t.Run("No Findings No Actions", func(t *testing.T) {
		actions := planner.Plan(DocumentGapAnalysis{}, RouteComplianceCheck{})
		assert.Empty(t, actions)
	})

	t.Run("Expired Document Renewal", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			ExpiredDocuments: []DocumentCheckResult{{
				DocumentType:     "Safety Management Certificate (SMC)",
				Status:           DocumentExpired,
				DaysUntilExpiry:  intPtr(-12),
				RegulationSource: "ISM Code",
			}},
		}
		route := RouteComplianceCheck{Route: []string{"SGSIN", "NLRTM"}}

		actions := planner.Plan(docs, route)

		require.Len(t, actions, 1)
		a := actions[0]
		assert.Equal(t, "ACT-0001", a.ActionID)
		assert.Equal(t, PriorityCritical, a.Priority)
		assert.Equal(t, "Document", a.Category)
		assert.Equal(t, "RENEW: Safety Management Certificate (SMC)", a.Action)
		assert.Equal(t, "Certificate expired 12 days ago", a.Reason)
		assert.Equal(t, "ISM Code", a.RegulationReference)
		assert.Equal(t, "Immediately - before departure", a.Deadline)
		assert.Equal(t, "Ship Manager / DPA", a.ResponsibleParty)
		assert.Equal(t, []string{"SGSIN", "NLRTM"}, a.PortsAffected)
	})

	t.Run("Missing Document Priority Is Demoted", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			MissingDocuments: []DocumentCheckResult{
				{DocumentType: "Cargo Ship Safety Radio Certificate", Priority: PriorityCritical, RegulationSource: "SOLAS"},
				{DocumentType: "Certificate of Registry", Priority: PriorityHigh, RegulationSource: "Flag State"},
			},
		}

		actions := planner.Plan(docs, RouteComplianceCheck{Route: []string{"SGSIN"}})

		require.Len(t, actions, 2)
		assert.Equal(t, PriorityHigh, actions[0].Priority, "critical missing document becomes a high action")
		assert.Equal(t, "OBTAIN: Cargo Ship Safety Radio Certificate", actions[0].Action)
		assert.Equal(t, "Required by SOLAS", actions[0].Reason)
		assert.Equal(t, "Before departure", actions[0].Deadline)
		assert.Equal(t, PriorityMedium, actions[1].Priority, "high missing document becomes a medium action")
		assert.Equal(t, []string{"SGSIN"}, actions[1].PortsAffected, "missing actions default to the route")
	})

	t.Run("Expiring Document Schedule", func(t *testing.T) {
		expiry := NewDate(2025, 6, 21)
		docs := DocumentGapAnalysis{
			ExpiringSoon: []DocumentCheckResult{{
				DocumentType:     "Maritime Labour Certificate",
				ExpiryDate:       &expiry,
				DaysUntilExpiry:  intPtr(20),
				RegulationSource: "MLC 2006",
			}},
		}

		actions := planner.Plan(docs, RouteComplianceCheck{Route: []string{"SGSIN"}})

		require.Len(t, actions, 1)
		a := actions[0]
		assert.Equal(t, PriorityMedium, a.Priority)
		assert.Equal(t, "SCHEDULE RENEWAL: Maritime Labour Certificate", a.Action)
		assert.Equal(t, "Expires in 20 days (on 2025-06-21)", a.Reason)
		assert.Equal(t, "Before 2025-06-21", a.Deadline)
		assert.Empty(t, a.PortsAffected, "renewal scheduling is not port bound")
	})

	t.Run("Expiring Within Fortnight Is High", func(t *testing.T) {
		expiry := NewDate(2025, 6, 10)
		docs := DocumentGapAnalysis{
			ExpiringSoon: []DocumentCheckResult{{
				DocumentType:    "Maritime Labour Certificate",
				ExpiryDate:      &expiry,
				DaysUntilExpiry: intPtr(9),
			}},
		}

		actions := planner.Plan(docs, RouteComplianceCheck{})

		require.Len(t, actions, 1)
		assert.Equal(t, PriorityHigh, actions[0].Priority)
	})

	t.Run("Zone Verifications", func(t *testing.T) {
		route := RouteComplianceCheck{
			Route:    []string{"SGSIN", "NLRTM", "USLAX"},
			ECAPorts: []string{"NLRTM", "USLAX"},
			EUPorts:  []string{"NLRTM"},
		}

		actions := planner.Plan(DocumentGapAnalysis{}, route)

		require.Len(t, actions, 2)
		eca := actions[0]
		assert.Equal(t, "VERIFY ECA FUEL COMPLIANCE", eca.Action)
		assert.Equal(t, PriorityHigh, eca.Priority)
		assert.Equal(t, "Fuel", eca.Category)
		assert.Equal(t, "Chief Engineer", eca.ResponsibleParty)
		assert.Equal(t, []string{"NLRTM", "USLAX"}, eca.PortsAffected)

		eu := actions[1]
		assert.Equal(t, "VERIFY EU MRV MONITORING PLAN", eu.Action)
		assert.Equal(t, PriorityMedium, eu.Priority)
		assert.Equal(t, "Emissions", eu.Category)
		assert.Equal(t, "Ship Manager / Environmental Officer", eu.ResponsibleParty)
	})

	t.Run("Sequential IDs Across Buckets", func(t *testing.T) {
		docs := DocumentGapAnalysis{
			ExpiredDocuments: []DocumentCheckResult{{DocumentType: "A", DaysUntilExpiry: intPtr(-1)}},
			MissingDocuments: []DocumentCheckResult{{DocumentType: "B", Priority: PriorityHigh}},
			ExpiringSoon:     []DocumentCheckResult{{DocumentType: "C", DaysUntilExpiry: intPtr(5)}},
		}
		route := RouteComplianceCheck{
			Route:    []string{"NLRTM"},
			ECAPorts: []string{"NLRTM"},
			EUPorts:  []string{"NLRTM"},
		}

		actions := planner.Plan(docs, route)

		require.Len(t, actions, 5)
		for i, a := range actions {
			assert.Equal(t, []string{"ACT-0001", "ACT-0002", "ACT-0003", "ACT-0004", "ACT-0005"}[i], a.ActionID)
		}
	})
}
