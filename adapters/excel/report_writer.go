package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"roottrace/domain/ancestry"
)

const sheetName = "Ancestry Analysis"

// ReportWriter exports a resolved analysis as an Excel workbook.
type ReportWriter struct{}

// NewReportWriter creates an Excel report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write renders the result into a single-sheet workbook and streams it to w.
func (rw *ReportWriter) Write(w io.Writer, input ancestry.AncestralInput, result *ancestry.AncestralResult) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Surname", input.Surname},
		{"Primary Region", result.PrimaryRegion},
		{"Confidence", result.ConfidenceScore},
		{"Coherence", result.QuantumCoherenceScore},
		{"Coastal Departure", result.CoastalDepartureRegion},
		{"Estimated Period", result.EstimatedTimePeriod},
		{"Living Descendants Estimate", result.LivingDescendantsEstimate},
		{},
		{"Ethnic Group", "Probability"},
	}
	for _, group := range result.EthnicGroups {
		rows = append(rows, []interface{}{group.Name, group.Probability})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Secondary Region", "Probability"})
	for _, region := range result.SecondaryRegions {
		rows = append(rows, []interface{}{region.Name, region.Probability})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Medical Heritage Markers"})
	for _, marker := range result.MedicalHeritageMarkers {
		rows = append(rows, []interface{}{marker})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}
