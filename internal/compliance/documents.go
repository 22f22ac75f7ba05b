package compliance

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Certificates expiring within this many days are flagged for renewal
const expiryWarningDays = 30

// DocumentAnalyzer checks the documents a vessel holds against the
// certificate catalog for its class
type DocumentAnalyzer struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewDocumentAnalyzer creates a document analyzer backed by the given catalog
func NewDocumentAnalyzer(catalog *Catalog, logger *zap.Logger) *DocumentAnalyzer {
	return &DocumentAnalyzer{
		catalog: catalog,
		logger:  logger,
	}
}

// Analyze partitions the certificates required for the vessel class into
// valid, expiring soon, expired and missing as of the given day.
func (da *DocumentAnalyzer) Analyze(vesselClass string, onFile []OnFileDocument, today Date) DocumentGapAnalysis {
	required, ok := da.catalog.Required(vesselClass)
	if !ok {
		da.logger.Warn("Unknown vessel class, falling back to cargo ship certificate set",
			zap.String("vessel_class", vesselClass))
		required, _ = da.catalog.Required(VesselClassCargoShip)
	}

	lookup := newDocumentLookup(onFile)

	analysis := DocumentGapAnalysis{
		TotalRequired:    len(required),
		ValidDocuments:   []DocumentCheckResult{},
		ExpiringSoon:     []DocumentCheckResult{},
		ExpiredDocuments: []DocumentCheckResult{},
		MissingDocuments: []DocumentCheckResult{},
	}

	for _, cert := range required {
		doc, found := lookup.match(strings.ToLower(cert.Name))
		if !found {
			analysis.MissingDocuments = append(analysis.MissingDocuments, missingResult(cert))
			continue
		}
		result := checkExpiry(cert, doc, today)
		switch result.Status {
		case DocumentExpired:
			analysis.ExpiredDocuments = append(analysis.ExpiredDocuments, result)
		case DocumentExpiringSoon:
			analysis.ExpiringSoon = append(analysis.ExpiringSoon, result)
		default:
			analysis.ValidDocuments = append(analysis.ValidDocuments, result)
		}
	}

	analysis.TotalAvailable = len(analysis.ValidDocuments) + len(analysis.ExpiringSoon)
	if analysis.TotalRequired > 0 {
		pct := float64(analysis.TotalAvailable) / float64(analysis.TotalRequired) * 100
		analysis.CompliancePercentage = math.Round(pct*10) / 10
	}

	return analysis
}

// Private methods

// documentLookup indexes documents by lowercased type, keeping the order
// they were supplied in. A later duplicate type replaces the earlier
// document without moving its position.
type documentLookup struct {
	entries []lookupEntry
	index   map[string]int
}

type lookupEntry struct {
	key string
	doc OnFileDocument
}

func newDocumentLookup(docs []OnFileDocument) *documentLookup {
	l := &documentLookup{index: make(map[string]int)}
	for _, doc := range docs {
		key := strings.ToLower(doc.DocumentType)
		if i, ok := l.index[key]; ok {
			l.entries[i].doc = doc
			continue
		}
		l.index[key] = len(l.entries)
		l.entries = append(l.entries, lookupEntry{key: key, doc: doc})
	}
	return l
}

// match returns the first document whose type contains, or is contained
// in, the certificate name.
func (l *documentLookup) match(certKey string) (OnFileDocument, bool) {
	for _, e := range l.entries {
		if strings.Contains(e.key, certKey) || strings.Contains(certKey, e.key) {
			return e.doc, true
		}
	}
	return OnFileDocument{}, false
}

func checkExpiry(cert CertificateSpec, doc OnFileDocument, today Date) DocumentCheckResult {
	result := DocumentCheckResult{
		DocumentType:     cert.Name,
		Status:           DocumentValid,
		RegulationSource: cert.Regulation,
		Priority:         PriorityLow,
	}

	if doc.ExpiryDate == "" {
		return result
	}
	expiry, err := ParseDate(doc.ExpiryDate)
	if err != nil {
		return result
	}

	days := expiry.DaysUntil(today)
	result.ExpiryDate = &expiry
	result.DaysUntilExpiry = &days

	switch {
	case days < 0:
		result.Status = DocumentExpired
		result.Priority = PriorityCritical
		result.ActionRequired = fmt.Sprintf("Renew immediately - expired %d days ago", -days)
	case days <= expiryWarningDays:
		result.Status = DocumentExpiringSoon
		result.ActionRequired = fmt.Sprintf("Schedule renewal - expires in %d days", days)
		if days <= 14 {
			result.Priority = PriorityHigh
		} else {
			result.Priority = PriorityMedium
		}
	}

	return result
}

func missingResult(cert CertificateSpec) DocumentCheckResult {
	priority := PriorityHigh
	if strings.Contains(cert.Name, "Safety") || strings.Contains(cert.Name, "ISM") {
		priority = PriorityCritical
	}
	return DocumentCheckResult{
		DocumentType:     cert.Name,
		Status:           DocumentMissing,
		RegulationSource: cert.Regulation,
		ActionRequired:   fmt.Sprintf("Obtain %s as required by %s", cert.Name, cert.Regulation),
		Priority:         priority,
	}
}
