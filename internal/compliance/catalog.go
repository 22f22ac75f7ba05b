package compliance

import (
	"errors"
)

// Known vessel classes
const (
	VesselClassCargoShip = "cargo_ship"
	VesselClassTanker    = "tanker"
	VesselClassPassenger = "passenger"
)

// ErrUnknownVesselClass is returned when a vessel class has no catalog entry
var ErrUnknownVesselClass = errors.New("unknown vessel class")

// CertificateSpec is one required certificate in the catalog
type CertificateSpec struct {
	Name       string `json:"name"`
	Regulation string `json:"regulation"`
	Validity   string `json:"validity"`
}

// Catalog holds the ordered required-certificate lists per vessel class.
// The order of each list is significant: document matching, gap analysis
// and action generation all walk it front to back.
type Catalog struct {
	classes map[string][]CertificateSpec
	order   []string
}

// NewCatalog creates a catalog populated with the standard certificate lists
func NewCatalog() *Catalog {
	c := &Catalog{
		classes: make(map[string][]CertificateSpec),
	}
	c.loadDefaultCertificates()
	return c
}

// Required returns the ordered certificate list for a vessel class.
// The second return is false when the class is not in the catalog.
func (c *Catalog) Required(vesselClass string) ([]CertificateSpec, bool) {
	specs, ok := c.classes[vesselClass]
	if !ok {
		return nil, false
	}
	out := make([]CertificateSpec, len(specs))
	copy(out, specs)
	return out, true
}

// Classes returns the known vessel classes in registration order.
func (c *Catalog) Classes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Private methods

func (c *Catalog) loadDefaultCertificates() {
	c.register(VesselClassCargoShip, []CertificateSpec{
		{Name: "Certificate of Registry", Regulation: "Flag State", Validity: "Indefinite"},
		{Name: "International Tonnage Certificate (1969)", Regulation: "Tonnage Convention", Validity: "Indefinite"},
		{Name: "International Load Line Certificate", Regulation: "Load Line Convention", Validity: "5 years"},
		{Name: "Cargo Ship Safety Construction Certificate", Regulation: "SOLAS", Validity: "5 years"},
		{Name: "Cargo Ship Safety Equipment Certificate", Regulation: "SOLAS", Validity: "5 years"},
		{Name: "Cargo Ship Safety Radio Certificate", Regulation: "SOLAS", Validity: "5 years"},
		{Name: "Document of Compliance (DOC)", Regulation: "ISM Code", Validity: "5 years"},
		{Name: "Safety Management Certificate (SMC)", Regulation: "ISM Code", Validity: "5 years"},
		{Name: "International Ship Security Certificate (ISSC)", Regulation: "ISPS Code", Validity: "5 years"},
		{Name: "International Oil Pollution Prevention Certificate (IOPP)", Regulation: "MARPOL Annex I", Validity: "5 years"},
		{Name: "International Air Pollution Prevention Certificate (IAPP)", Regulation: "MARPOL Annex VI", Validity: "5 years"},
		{Name: "International Sewage Pollution Prevention Certificate (ISPP)", Regulation: "MARPOL Annex IV", Validity: "5 years"},
		{Name: "International Energy Efficiency Certificate (IEE)", Regulation: "MARPOL Annex VI", Validity: "Indefinite"},
		{Name: "International Ballast Water Management Certificate", Regulation: "BWM Convention", Validity: "5 years"},
		{Name: "Maritime Labour Certificate", Regulation: "MLC 2006", Validity: "5 years"},
		{Name: "Minimum Safe Manning Document", Regulation: "SOLAS", Validity: "Indefinite"},
		{Name: "Continuous Synopsis Record (CSR)", Regulation: "SOLAS XI-1", Validity: "Continuous"},
	})

	c.register(VesselClassTanker, []CertificateSpec{
		{Name: "International Oil Pollution Prevention Certificate (IOPP)", Regulation: "MARPOL Annex I", Validity: "5 years"},
		{Name: "Certificate of Fitness for Carriage of Dangerous Chemicals", Regulation: "IBC Code", Validity: "5 years"},
		{Name: "International Certificate of Fitness for Carriage of Liquefied Gases", Regulation: "IGC Code", Validity: "5 years"},
	})

	c.register(VesselClassPassenger, []CertificateSpec{
		{Name: "Passenger Ship Safety Certificate", Regulation: "SOLAS", Validity: "12 months"},
	})
}

func (c *Catalog) register(vesselClass string, specs []CertificateSpec) {
	c.classes[vesselClass] = specs
	c.order = append(c.order, vesselClass)
}
