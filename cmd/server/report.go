package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fairlead/compliance-engine/internal/compliance"
	"github.com/fairlead/compliance-engine/internal/export"
	"github.com/fairlead/compliance-engine/internal/knowledge"
)

// voyageFile is the YAML input accepted by the one-shot report command
type voyageFile struct {
	Vessel struct {
		VesselName            string   `yaml:"vessel_name"`
		IMONumber             string   `yaml:"imo_number"`
		VesselType            string   `yaml:"vessel_type"`
		FlagState             string   `yaml:"flag_state"`
		GrossTonnage          *float64 `yaml:"gross_tonnage"`
		YearBuilt             *int     `yaml:"year_built"`
		ClassificationSociety string   `yaml:"classification_society"`
	} `yaml:"vessel"`
	RoutePorts      []string `yaml:"route_ports"`
	VoyageStartDate string   `yaml:"voyage_start_date"`
	Documents       []struct {
		DocumentType string `yaml:"document_type"`
		ExpiryDate   string `yaml:"expiry_date"`
	} `yaml:"documents"`
}

func newReportCommand() *cobra.Command {
	var inputPath, format, outputPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a one-shot compliance report from a voyage file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(inputPath, format, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the voyage YAML file")
	cmd.Flags().StringVar(&format, "format", export.FormatJSON, "output format: json, csv, pdf or xlsx")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file (defaults to stdout for json/csv, <report_id>.<format> otherwise)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func runReport(inputPath, format, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read voyage file: %w", err)
	}

	var voyage voyageFile
	if err := yaml.Unmarshal(data, &voyage); err != nil {
		return fmt.Errorf("failed to parse voyage file: %w", err)
	}

	vessel := compliance.VesselInfo{
		VesselName:            voyage.Vessel.VesselName,
		IMONumber:             voyage.Vessel.IMONumber,
		VesselType:            voyage.Vessel.VesselType,
		FlagState:             voyage.Vessel.FlagState,
		GrossTonnage:          voyage.Vessel.GrossTonnage,
		YearBuilt:             voyage.Vessel.YearBuilt,
		ClassificationSociety: voyage.Vessel.ClassificationSociety,
	}

	documents := make([]compliance.OnFileDocument, 0, len(voyage.Documents))
	for _, doc := range voyage.Documents {
		documents = append(documents, compliance.OnFileDocument{
			DocumentType: doc.DocumentType,
			ExpiryDate:   doc.ExpiryDate,
		})
	}

	var voyageStart *compliance.Date
	if voyage.VoyageStartDate != "" {
		parsed, err := compliance.ParseDate(voyage.VoyageStartDate)
		if err != nil {
			return fmt.Errorf("invalid voyage_start_date %q: %w", voyage.VoyageStartDate, err)
		}
		voyageStart = &parsed
	}

	generator := compliance.NewGenerator(knowledge.NewStaticSearcher(), zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := generator.GenerateReport(ctx, vessel, voyage.RoutePorts, documents, voyageStart)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	content, _, err := export.NewRenderer().Render(report, format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if format == export.FormatJSON || format == export.FormatCSV {
			_, err := os.Stdout.Write(content)
			return err
		}
		outputPath = fmt.Sprintf("%s.%s", report.ReportID, format)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "report %s written to %s\n", report.ReportID, outputPath)
	return nil
}
