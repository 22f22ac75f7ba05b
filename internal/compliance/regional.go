package compliance

// RegionalRules derives route-level regulatory requirements from zone
// membership
type RegionalRules struct {
	atlas *PortAtlas
}

// NewRegionalRules creates the regional rule set for the given atlas
func NewRegionalRules(atlas *PortAtlas) *RegionalRules {
	return &RegionalRules{atlas: atlas}
}

// Applicable returns the regional requirements triggered by the route,
// EU emissions rules first, then ECA fuel rules.
func (rr *RegionalRules) Applicable(routePorts []string) []RegulationRequirement {
	requirements := []RegulationRequirement{}

	if rr.anyEUPort(routePorts) {
		requirements = append(requirements, euMRVRequirement(), euETSRequirement())
	}
	if rr.anyECAPort(routePorts) {
		requirements = append(requirements, ecaFuelRequirement())
	}

	return requirements
}

// Private methods

func (rr *RegionalRules) anyEUPort(routePorts []string) bool {
	for _, p := range routePorts {
		if rr.atlas.IsEUPort(p) {
			return true
		}
	}
	return false
}

func (rr *RegionalRules) anyECAPort(routePorts []string) bool {
	for _, p := range routePorts {
		if _, ok := rr.atlas.ECAZoneFor(p); ok {
			return true
		}
	}
	return false
}

func euMRVRequirement() RegulationRequirement {
	return RegulationRequirement{
		RequirementID:   "EU-MRV-001",
		Regulation:      "EU Regulation 2015/757 (as amended)",
		Title:           "EU MRV Monitoring, Reporting and Verification",
		Description:     "Ships ≥5000 GT calling at EU/EEA ports must monitor and report CO2, CH4, and N2O emissions. Requires verified Monitoring Plan and annual Emissions Report.",
		RequirementType: "MANDATORY",
		Applicability:   "Ships ≥5000 GT calling at EU/EEA ports",
		DocumentsRequired: []string{
			"EU MRV Monitoring Plan",
			"EU MRV Document of Compliance",
			"Annual Emissions Report",
		},
		Deadline: "Report by 31 March each year",
	}
}

func euETSRequirement() RegulationRequirement {
	return RegulationRequirement{
		RequirementID:   "EU-ETS-001",
		Regulation:      "EU Directive 2023/959",
		Title:           "EU Emissions Trading System (Maritime)",
		Description:     "From 2024, ships must surrender EU ETS allowances for verified emissions. Phase-in: 40% (2024), 70% (2025), 100% (2026+).",
		RequirementType: "MANDATORY",
		Applicability:   "Ships ≥5000 GT on EU voyages",
		DocumentsRequired: []string{
			"EU ETS Account Registration",
			"Verified Emissions Report",
		},
		Deadline: "Surrender allowances by 30 September each year",
	}
}

func ecaFuelRequirement() RegulationRequirement {
	return RegulationRequirement{
		RequirementID:   "ECA-001",
		Regulation:      "MARPOL Annex VI Reg 14",
		Title:           "Emission Control Area Fuel Requirements",
		Description:     "Ships in ECAs must use fuel with max 0.10% sulphur content, or use equivalent compliance methods (scrubbers, LNG).",
		RequirementType: "MANDATORY",
		Applicability:   "All ships in designated ECAs",
		DocumentsRequired: []string{
			"Bunker Delivery Notes",
			"Fuel Changeover Procedure",
			"EGCS Documentation (if fitted)",
		},
	}
}
