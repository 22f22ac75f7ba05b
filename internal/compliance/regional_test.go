package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalRules_Applicable(t *testing.T) {
	rules := NewRegionalRules(NewPortAtlas())

	t.Run("EU Route Triggers MRV ETS And ECA", func(t *testing.T) {
		reqs := rules.Applicable([]string{"SGSIN", "NLRTM"})

		require.Len(t, reqs, 3)
		assert.Equal(t, "EU-MRV-001", reqs[0].RequirementID)
		assert.Equal(t, "EU-ETS-001", reqs[1].RequirementID)
		assert.Equal(t, "ECA-001", reqs[2].RequirementID, "Rotterdam is inside the North Sea ECA")

		assert.Equal(t, "EU Regulation 2015/757 (as amended)", reqs[0].Regulation)
		assert.Equal(t, "Report by 31 March each year", reqs[0].Deadline)
		assert.Contains(t, reqs[1].Description, "40% (2024), 70% (2025), 100% (2026+)")
		assert.Equal(t, "Surrender allowances by 30 September each year", reqs[1].Deadline)
	})

	t.Run("ECA Only Route", func(t *testing.T) {
		reqs := rules.Applicable([]string{"USLAX", "USNYC"})

		require.Len(t, reqs, 1)
		assert.Equal(t, "ECA-001", reqs[0].RequirementID)
		assert.Equal(t, "MARPOL Annex VI Reg 14", reqs[0].Regulation)
		assert.Contains(t, reqs[0].DocumentsRequired, "Bunker Delivery Notes")
		assert.Empty(t, reqs[0].Deadline)
	})

	t.Run("Open Sea Route Has None", func(t *testing.T) {
		reqs := rules.Applicable([]string{"SGSIN", "HKHKG"})
		assert.Empty(t, reqs)
	})

	t.Run("Empty Route Has None", func(t *testing.T) {
		assert.Empty(t, rules.Applicable(nil))
	})
}
