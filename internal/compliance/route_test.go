package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteAnalyzer_Analyze(t *testing.T) {
	analyzer := NewRouteAnalyzer(NewPortAtlas())

	t.Run("Mixed Route Classification", func(t *testing.T) {
		check := analyzer.Analyze([]string{"SGSIN", "NLRTM", "USLAX"})

		assert.Equal(t, []string{"SGSIN", "NLRTM", "USLAX"}, check.Route)
		assert.Equal(t, []string{"NLRTM", "USLAX"}, check.ECAPorts, "ECA ports keep route order")
		assert.Equal(t, []string{"NLRTM"}, check.EUPorts)
		assert.Len(t, check.PortRequirements, 3)

		require.Contains(t, check.PortRequirements, "SGSIN")
		assert.Equal(t, "Tokyo MOU", check.PortRequirements["SGSIN"].PSCRegime)
		assert.Equal(t, 96, check.PortRequirements["USLAX"].AdvanceNoticeHours)
	})

	t.Run("Duplicate Port Calls Deduplicate Zone Lists", func(t *testing.T) {
		check := analyzer.Analyze([]string{"NLRTM", "DEHAM", "NLRTM"})

		assert.Equal(t, []string{"NLRTM", "DEHAM", "NLRTM"}, check.Route, "route keeps every call")
		assert.Equal(t, []string{"NLRTM", "DEHAM"}, check.ECAPorts)
		assert.Equal(t, []string{"NLRTM", "DEHAM"}, check.EUPorts)
		assert.Len(t, check.PortRequirements, 2, "requirements are keyed by port code")
	})

	t.Run("Empty Route", func(t *testing.T) {
		check := analyzer.Analyze(nil)

		assert.Empty(t, check.Route)
		assert.Empty(t, check.ECAPorts)
		assert.Empty(t, check.EUPorts)
		assert.Empty(t, check.PortRequirements)
		assert.NotNil(t, check.CommonRequirements, "common requirements serialize as an empty list")
	})

	t.Run("Unknown Port Still Described", func(t *testing.T) {
		check := analyzer.Analyze([]string{"BRSSZ"})

		req := check.PortRequirements["BRSSZ"]
		assert.Equal(t, "Port BRSSZ", req.PortName)
		assert.Equal(t, "Local PSC", req.PSCRegime)
		assert.Empty(t, check.ECAPorts)
	})
}
