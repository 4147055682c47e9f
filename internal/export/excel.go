package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/AngleCut/internal/model"
)

// Sheet names in the exported workbook.
const (
	cutListSheet = "Cut List"
	summarySheet = "Summary"
)

// ExportExcel writes the optimal plan as a two-sheet workbook: the ordered
// cut list with bracket geometry, and the material summary for ordering.
func ExportExcel(path string, result model.RunResult, req model.RunRequest) error {
	if len(result.Optimal.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}
	req = req.WithDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cutListSheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}

	if err := writeCutList(f, result.Optimal); err != nil {
		return err
	}
	if err := writeSummary(f, result, req); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeCutList(f *excelize.File, seg model.RunSegmentation) error {
	headers := []string{"Piece", "Length (mm)", "Brackets", "Spacing (mm)", "First bracket (mm)", "Last edge (mm)", "Positions (mm)", "Standard"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cutListSheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range seg.Pieces {
		values := []interface{}{
			row + 1,
			p.Length,
			p.BracketCount,
			p.Spacing,
			p.StartOffset,
			p.EndOffset(),
			formatPositions(p.Positions),
			p.IsStandard,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(cutListSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, result model.RunResult, req model.RunRequest) error {
	seg := result.Optimal
	rows := [][]interface{}{
		{"Run length (mm)", seg.TotalLength},
		{"Bracket centres (mm)", req.BracketCentres},
		{"Pieces", seg.PieceCount},
		{"Brackets", seg.TotalBrackets},
		{"Gaps", seg.GapCount},
		{"Gap distance (mm)", seg.TotalGapDistance},
		{"Average spacing (mm)", seg.AverageSpacing},
		{"Total angle to order (mm)", result.Summary.TotalAngleLength},
		{},
		{"Length (mm)", "Count", "Type"},
	}
	for _, group := range result.Summary.Breakdown {
		kind := "custom"
		if group.IsStandard {
			kind = "standard"
		}
		rows = append(rows, []interface{}{group.Length, group.Count, kind})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatPositions(positions []float64) string {
	out := ""
	for i, p := range positions {
		if i > 0 {
			out += ", "
		}
		out += trimmedMM(p)
	}
	return out
}
