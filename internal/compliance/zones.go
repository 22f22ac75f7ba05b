package compliance

import (
	"sort"
	"strings"
)

// Sulphur limits in percent fuel content
const (
	GlobalSulphurLimit = 0.50
	ECASulphurLimit    = 0.10
)

// ECAZone is a designated emission control area and its member ports
type ECAZone struct {
	Name          string   `json:"name"`
	SulphurLimit  float64  `json:"sulphur_limit"`
	EffectiveDate string   `json:"effective_date,omitempty"`
	Ports         []string `json:"ports"`
}

// PortAtlas resolves UN/LOCODE port codes to zone membership, PSC regime
// and port-call obligations
type PortAtlas struct {
	ecaZones     []ECAZone
	euPorts      []string
	portNames    map[string]string
	scrubberBans map[string]bool
	pscPrefixes  map[string]string
}

// NewPortAtlas creates an atlas populated with the standard zone tables
func NewPortAtlas() *PortAtlas {
	a := &PortAtlas{
		portNames:    make(map[string]string),
		scrubberBans: make(map[string]bool),
		pscPrefixes:  make(map[string]string),
	}
	a.loadDefaultZones()
	return a
}

// ECAZoneFor returns the emission control area containing the port, if any.
func (a *PortAtlas) ECAZoneFor(portCode string) (ECAZone, bool) {
	for _, zone := range a.ecaZones {
		for _, p := range zone.Ports {
			if p == portCode {
				return zone, true
			}
		}
	}
	return ECAZone{}, false
}

// ECAZones returns all emission control areas.
func (a *PortAtlas) ECAZones() []ECAZone {
	out := make([]ECAZone, len(a.ecaZones))
	copy(out, a.ecaZones)
	return out
}

// IsEUPort reports whether the port is subject to EU MRV/ETS rules.
func (a *PortAtlas) IsEUPort(portCode string) bool {
	for _, p := range a.euPorts {
		if p == portCode {
			return true
		}
	}
	return false
}

// PortName returns the display name for a port code.
func (a *PortAtlas) PortName(portCode string) string {
	if name, ok := a.portNames[portCode]; ok {
		return name
	}
	return "Port " + portCode
}

// PortCountry returns the ISO country prefix of a port code.
func (a *PortAtlas) PortCountry(portCode string) string {
	if len(portCode) < 2 {
		return portCode
	}
	return portCode[:2]
}

// PSCRegime returns the port state control regime for a port.
func (a *PortAtlas) PSCRegime(portCode string) string {
	if strings.HasPrefix(portCode, "US") {
		return "USCG"
	}
	if regime, ok := a.pscPrefixes[a.PortCountry(portCode)]; ok {
		return regime
	}
	return "Local PSC"
}

// AdvanceNoticeHours returns the pre-arrival notification window for a port.
func (a *PortAtlas) AdvanceNoticeHours(portCode string) int {
	if strings.HasPrefix(portCode, "US") {
		return 96
	}
	return 24
}

// PreArrivalDocuments returns the documents to lodge before arrival.
func (a *PortAtlas) PreArrivalDocuments(portCode string) []string {
	docs := []string{"Crew List", "Cargo Manifest", "Ship's Stores Declaration"}
	if strings.HasPrefix(portCode, "US") {
		docs = append(docs, "USCG Notice of Arrival (eNOAD)", "CBP Form 1302")
	}
	switch a.PortCountry(portCode) {
	case "NL", "DE", "BE", "FR", "GB", "ES", "IT":
		docs = append(docs, "FAL Forms 1-7", "Waste Notification")
	}
	return docs
}

// ScrubberAllowed reports whether open-loop scrubbers may discharge at
// the port.
func (a *PortAtlas) ScrubberAllowed(portCode string) bool {
	return !a.scrubberBans[portCode]
}

// SpecialRequirements returns port-specific obligations beyond the
// standard set.
func (a *PortAtlas) SpecialRequirements(portCode string) []string {
	var reqs []string
	if a.IsEUPort(portCode) {
		reqs = append(reqs, "EU MRV reporting required")
		reqs = append(reqs, "EU ETS allowances required from 2024")
	}
	if portCode == "SGSIN" {
		reqs = append(reqs, "MPA pre-arrival notification via MARINET")
	}
	return reqs
}

// Describe assembles the full port-call requirement record for a port.
func (a *PortAtlas) Describe(portCode string) PortRequirement {
	req := PortRequirement{
		PortCode:            portCode,
		PortName:            a.PortName(portCode),
		Country:             a.PortCountry(portCode),
		PSCRegime:           a.PSCRegime(portCode),
		AdvanceNoticeHours:  a.AdvanceNoticeHours(portCode),
		PreArrivalDocuments: a.PreArrivalDocuments(portCode),
		ScrubberAllowed:     a.ScrubberAllowed(portCode),
		SpecialRequirements: a.SpecialRequirements(portCode),
	}
	if zone, ok := a.ECAZoneFor(portCode); ok {
		limit := zone.SulphurLimit
		req.ECAZone = true
		req.SulphurLimit = &limit
	}
	return req
}

// KnownPorts returns every port present in the zone tables, sorted by code.
func (a *PortAtlas) KnownPorts() []string {
	seen := make(map[string]bool)
	for _, zone := range a.ecaZones {
		for _, p := range zone.Ports {
			seen[p] = true
		}
	}
	for _, p := range a.euPorts {
		seen[p] = true
	}
	for p := range a.portNames {
		seen[p] = true
	}
	ports := make([]string, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Strings(ports)
	return ports
}

// Private methods

func (a *PortAtlas) loadDefaultZones() {
	a.ecaZones = []ECAZone{
		{Name: "Baltic Sea", SulphurLimit: ECASulphurLimit, Ports: []string{"FIHEL", "SEGOT", "DKCPH", "PLGDN", "EETAL", "RULED"}},
		{Name: "North Sea", SulphurLimit: ECASulphurLimit, Ports: []string{"NLRTM", "DEHAM", "BEANR", "GBFXT", "GBSOU"}},
		{Name: "North American", SulphurLimit: ECASulphurLimit, Ports: []string{"USLAX", "USNYC", "USHOU", "CAHAL", "CAVAN"}},
		{Name: "US Caribbean", SulphurLimit: ECASulphurLimit, Ports: []string{"USSJN", "VICHA"}},
		{Name: "Mediterranean", SulphurLimit: ECASulphurLimit, EffectiveDate: "2025-05-01", Ports: []string{"ITGOA", "ESBCN", "FRMAR", "GRPIR"}},
	}

	a.euPorts = []string{"NLRTM", "DEHAM", "BEANR", "FRMAR", "ESBCN", "ITGOA", "GRPIR", "PLGDN", "SEGOT", "FIHEL"}

	a.portNames = map[string]string{
		"SGSIN": "Port of Singapore",
		"NLRTM": "Port of Rotterdam",
		"DEHAM": "Port of Hamburg",
		"CNSHA": "Port of Shanghai",
		"HKHKG": "Port of Hong Kong",
		"USNYC": "Port of New York",
		"USLAX": "Port of Los Angeles",
	}

	a.scrubberBans = map[string]bool{
		"SGSIN": true,
		"CNSHA": true,
		"DEHAM": true,
		"BEANR": true,
		"USLAX": true,
	}

	for _, prefix := range []string{"NL", "DE", "BE", "FR", "GB", "ES", "IT", "PT", "NO", "SE", "DK", "FI", "PL"} {
		a.pscPrefixes[prefix] = "Paris MOU"
	}
	for _, prefix := range []string{"SG", "CN", "JP", "KR", "AU", "NZ", "HK", "TW", "MY", "TH", "VN", "PH", "ID"} {
		a.pscPrefixes[prefix] = "Tokyo MOU"
	}
	for _, prefix := range []string{"IN", "LK", "BD", "PK", "AE", "SA", "OM", "KE", "TZ", "ZA"} {
		a.pscPrefixes[prefix] = "Indian Ocean MOU"
	}
}
