//go:build property
// +build property

// Property-based tests for the analysis pipeline: bucket totality, score
// bounds and action numbering under arbitrary certificate expiry spreads.
package compliance

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

var propToday = NewDate(2025, time.June, 1)

func docsFromOffsets(offsets []int) []OnFileDocument {
	specs, _ := NewCatalog().Required(VesselClassCargoShip)
	docs := make([]OnFileDocument, 0, len(offsets))
	for i, off := range offsets {
		if i >= len(specs) {
			break
		}
		docs = append(docs, OnFileDocument{
			DocumentType: specs[i].Name,
			ExpiryDate:   propToday.AddDate(0, 0, off).Format("2006-01-02"),
		})
	}
	return docs
}

func TestDocumentPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	analyzer := NewDocumentAnalyzer(NewCatalog(), zap.NewNop())

	properties.Property("every required certificate lands in exactly one bucket", prop.ForAll(
		func(offsets []int) bool {
			analysis := analyzer.Analyze(VesselClassCargoShip, docsFromOffsets(offsets), propToday)
			total := len(analysis.ValidDocuments) + len(analysis.ExpiringSoon) +
				len(analysis.ExpiredDocuments) + len(analysis.MissingDocuments)
			return total == analysis.TotalRequired
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
	))

	properties.Property("expiry offset decides the bucket", prop.ForAll(
		func(offset int) bool {
			docs := []OnFileDocument{{
				DocumentType: "Maritime Labour Certificate",
				ExpiryDate:   propToday.AddDate(0, 0, offset).Format("2006-01-02"),
			}}
			analysis := analyzer.Analyze(VesselClassCargoShip, docs, propToday)
			switch {
			case offset < 0:
				return len(analysis.ExpiredDocuments) == 1
			case offset <= 30:
				return len(analysis.ExpiringSoon) == 1
			default:
				return len(analysis.ValidDocuments) == 1
			}
		},
		gen.IntRange(-2000, 2000),
	))

	properties.TestingRun(t)
}

func TestSummaryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	analyzer := NewDocumentAnalyzer(NewCatalog(), zap.NewNop())
	assessor := NewRiskAssessor()
	planner := NewActionPlanner()
	summarizer := NewSummarizer()

	summaryFor := func(offsets []int) (DocumentGapAnalysis, ReportSummary) {
		analysis := analyzer.Analyze(VesselClassCargoShip, docsFromOffsets(offsets), propToday)
		route := RouteComplianceCheck{Route: []string{"SGSIN"}}
		risks := assessor.Assess(analysis, route)
		actions := planner.Plan(analysis, route)
		return analysis, summarizer.Summarize(analysis, risks, actions)
	}

	properties.Property("compliance score stays within 0 and 100", prop.ForAll(
		func(offsets []int) bool {
			_, summary := summaryFor(offsets)
			return summary.ComplianceScore >= 0 && summary.ComplianceScore <= 100
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
	))

	properties.Property("compliant status implies no findings", prop.ForAll(
		func(offsets []int) bool {
			analysis, summary := summaryFor(offsets)
			if summary.OverallStatus != StatusCompliant {
				return true
			}
			return len(analysis.ExpiredDocuments) == 0 &&
				len(analysis.MissingDocuments) == 0 &&
				len(analysis.ExpiringSoon) == 0
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
	))

	properties.Property("key findings never exceed five", prop.ForAll(
		func(offsets []int) bool {
			_, summary := summaryFor(offsets)
			return len(summary.KeyFindings) <= 5 && len(summary.ImmediateActions) <= 5
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
	))

	properties.TestingRun(t)
}

func TestActionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	analyzer := NewDocumentAnalyzer(NewCatalog(), zap.NewNop())
	planner := NewActionPlanner()

	properties.Property("action IDs are sequential from one", prop.ForAll(
		func(offsets []int, hasECA, hasEU bool) bool {
			route := RouteComplianceCheck{Route: []string{"SGSIN"}}
			if hasECA {
				route.ECAPorts = []string{"USLAX"}
			}
			if hasEU {
				route.EUPorts = []string{"NLRTM"}
			}
			analysis := analyzer.Analyze(VesselClassCargoShip, docsFromOffsets(offsets), propToday)
			actions := planner.Plan(analysis, route)
			for i, a := range actions {
				if a.ActionID != fmt.Sprintf("ACT-%04d", i+1) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("timeline has at most two ordered phases", prop.ForAll(
		func(offsets []int) bool {
			analysis := analyzer.Analyze(VesselClassCargoShip, docsFromOffsets(offsets), propToday)
			actions := planner.Plan(analysis, RouteComplianceCheck{Route: []string{"SGSIN"}})
			timeline := BuildTimeline(actions, nil)
			if len(timeline) > 2 {
				return false
			}
			if len(timeline) == 2 {
				return timeline[0].Phase == "Immediate (Before Departure)" && timeline[1].Phase == "Pre-Voyage"
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-365, 730)),
	))

	properties.TestingRun(t)
}
