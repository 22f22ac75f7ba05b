package compliance

// RouteAnalyzer classifies a port rotation by zone membership and
// assembles the port-call requirements for every port on it
type RouteAnalyzer struct {
	atlas *PortAtlas
}

// NewRouteAnalyzer creates a route analyzer backed by the given atlas
func NewRouteAnalyzer(atlas *PortAtlas) *RouteAnalyzer {
	return &RouteAnalyzer{atlas: atlas}
}

// Analyze builds the route compliance check for a port rotation. The ECA
// and EU port lists are deduplicated in first-call order.
func (ra *RouteAnalyzer) Analyze(routePorts []string) RouteComplianceCheck {
	check := RouteComplianceCheck{
		Route:              append([]string(nil), routePorts...),
		PortRequirements:   make(map[string]PortRequirement, len(routePorts)),
		CommonRequirements: []RegulationRequirement{},
		ECAPorts:           []string{},
		EUPorts:            []string{},
	}

	for _, portCode := range routePorts {
		check.PortRequirements[portCode] = ra.atlas.Describe(portCode)
		if _, ok := ra.atlas.ECAZoneFor(portCode); ok {
			check.ECAPorts = appendUnique(check.ECAPorts, portCode)
		}
		if ra.atlas.IsEUPort(portCode) {
			check.EUPorts = appendUnique(check.EUPorts, portCode)
		}
	}

	return check
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
