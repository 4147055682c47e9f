// Package export provides functionality for exporting run layout results
// to shop paperwork formats: cutting drawings, piece labels, cut lists and
// option comparison charts.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/AngleCut/internal/model"
)

// pieceColor represents an RGB color for a drawn piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth     = 297.0
	pageHeight    = 210.0
	marginLeft    = 15.0
	marginRight   = 15.0
	marginTop     = 15.0
	marginBottom  = 15.0
	headerHeight  = 12.0
	rowHeight     = 26.0
	barHeight     = 9.0
	piecesPerPage = 6
)

// ExportPDF generates a cutting drawing for the optimal plan: each piece as
// a dimensioned bar with bracket positions, followed by a summary page.
func ExportPDF(path string, result model.RunResult, req model.RunRequest) error {
	if len(result.Optimal.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}
	req = req.WithDefaults()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pieces := result.Optimal.Pieces
	for start := 0; start < len(pieces); start += piecesPerPage {
		end := start + piecesPerPage
		if end > len(pieces) {
			end = len(pieces)
		}
		pdf.AddPage()
		renderPiecePage(pdf, result.Optimal, req, start, end)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, req)

	return pdf.OutputFileAndClose(path)
}

// renderPiecePage draws pieces [start, end) as dimensioned bars.
func renderPiecePage(pdf *fpdf.Fpdf, seg model.RunSegmentation, req model.RunRequest, start, end int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Run %.1f mm @ %.0f mm centres — pieces %d-%d of %d",
		seg.TotalLength, req.BracketCentres, start+1, end, seg.PieceCount)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// All bars share one scale so relative piece lengths stay readable.
	drawWidth := pageWidth - marginLeft - marginRight - 20
	scale := drawWidth / req.MaxAngleLength

	y := marginTop + headerHeight + 6
	for i := start; i < end; i++ {
		renderPieceBar(pdf, seg.Pieces[i], i, scale, y)
		y += rowHeight
	}
}

// renderPieceBar draws one piece as a bar with bracket ticks and edge
// dimensions.
func renderPieceBar(pdf *fpdf.Fpdf, p model.AnglePiece, index int, scale, y float64) {
	col := pieceColors[index%len(pieceColors)]

	kind := "custom"
	if p.IsStandard {
		kind = "standard"
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	caption := fmt.Sprintf("Piece %d  (%s)  %.1f mm, %d brackets @ %.0f mm", index+1, kind, p.Length, p.BracketCount, p.Spacing)
	pdf.CellFormat(150, 4, caption, "", 0, "L", false, 0, "")

	barY := y + 6
	barW := p.Length * scale

	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.Rect(marginLeft, barY, barW, barHeight, "FD")

	// Bracket ticks with position labels.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.SetFont("Helvetica", "", 6)
	for _, pos := range p.Positions {
		x := marginLeft + pos*scale
		pdf.Line(x, barY-1.5, x, barY+barHeight+1.5)

		label := trimmedMM(pos)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(x-labelW/2, barY+barHeight+2)
		pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
	}

	// Edge distances above the bar ends.
	pdf.SetTextColor(80, 80, 80)
	startLabel := trimmedMM(p.StartOffset)
	pdf.SetXY(marginLeft, barY-4)
	pdf.CellFormat(pdf.GetStringWidth(startLabel), 3, startLabel, "", 0, "L", false, 0, "")

	endLabel := trimmedMM(p.EndOffset())
	endW := pdf.GetStringWidth(endLabel)
	pdf.SetXY(marginLeft+barW-endW, barY-4)
	pdf.CellFormat(endW, 3, endLabel, "", 0, "R", false, 0, "")

	// Overall length to the right of the bar.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetXY(marginLeft+barW+2, barY+barHeight/2-1.5)
	pdf.CellFormat(18, 3, trimmedMM(p.Length), "", 0, "L", false, 0, "")
}

// renderSummaryPage draws the final page: headline statistics, the material
// breakdown table and any alignment warnings.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.RunResult, req model.RunRequest) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Run Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	seg := result.Optimal

	summaryItems := []struct {
		label string
		value string
	}{
		{"Run length", fmt.Sprintf("%.1f mm", seg.TotalLength)},
		{"Bracket centres", fmt.Sprintf("%.1f mm", req.BracketCentres)},
		{"Pieces", fmt.Sprintf("%d", seg.PieceCount)},
		{"Brackets", fmt.Sprintf("%d", seg.TotalBrackets)},
		{"Average spacing", fmt.Sprintf("%.1f mm", seg.AverageSpacing)},
		{"Unique lengths", fmt.Sprintf("%d", seg.UniqueLengths)},
		{"Candidates evaluated", fmt.Sprintf("%d", len(result.AllOptions))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{40, 25, 30, 35}
	headers := []string{"Length", "Count", "Type", "Total"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, group := range result.Summary.Breakdown {
		kind := "custom"
		if group.IsStandard {
			kind = "standard"
		}
		rowData := []string{
			fmt.Sprintf("%.1f mm", group.Length),
			fmt.Sprintf("%d", group.Count),
			kind,
			fmt.Sprintf("%.1f mm", group.Length*float64(group.Count)),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(seg.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 120, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Alignment Notes", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, warning := range seg.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+warning, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by AngleCut - Run Layout Optimizer", "", 0, "C", false, 0, "")
}

// trimmedMM formats a millimeter value without trailing zero decimals.
func trimmedMM(v float64) string {
	if math.Abs(v-math.Round(v)) < 0.005 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
