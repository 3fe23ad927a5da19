// Package export provides functionality for exporting cutting plans to
// various file formats.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/model"
)

// pieceColor represents an RGB color for a cut piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors alternate along a bar so adjacent pieces stay distinguishable.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
}

// wasteColor fills the offcut tail of each bar.
var wasteColor = pieceColor{R: 189, G: 189, B: 189}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	barHeight    = 10.0
	barSpacing   = 8.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a cutting plan. Each used stock
// type is rendered on its own page as a stack of scaled bar diagrams,
// followed by a summary page.
func ExportPDF(path string, sol model.Solution) error {
	if len(sol.Stocks) == 0 {
		return fmt.Errorf("no cutting plan to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, su := range sol.Stocks {
		pdf.AddPage()
		renderStockPage(pdf, sol, su, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, sol)

	return pdf.OutputFileAndClose(path)
}

// renderStockPage draws every bar group of one stock type.
func renderStockPage(pdf *fpdf.Fpdf, sol model.Solution, su model.StockUsage, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 8, fmt.Sprintf("Stock bar %s m - %d bar(s)", format.Length(su.Stock.Length), su.BarsUsed()),
		"", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, marginTop+8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Piece length: %s m | Page %d", format.Length(sol.Demand.Length), pageNum),
		"", 1, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / su.Stock.Length

	y := drawAreaTop
	for _, g := range su.Groups {
		for r := 0; r < g.Repeat; r++ {
			if y+barHeight > pageHeight-marginBottom {
				pdf.AddPage()
				y = marginTop
			}
			drawBar(pdf, marginLeft, y, scale, sol.Demand.Length, g.Pattern)
			y += barHeight + barSpacing
		}
	}
}

// drawBar renders one bar: colored piece segments followed by a gray offcut.
func drawBar(pdf *fpdf.Fpdf, x, y, scale, pieceLen float64, pat model.Pattern) {
	pdf.SetDrawColor(60, 60, 60)

	for i := 0; i < pat.Pieces; i++ {
		c := pieceColors[i%len(pieceColors)]
		pdf.SetFillColor(c.R, c.G, c.B)
		segX := x + float64(i)*pieceLen*scale
		segW := pieceLen * scale
		pdf.Rect(segX, y, segW, barHeight, "FD")

		if segW > 12 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(255, 255, 255)
			pdf.Text(segX+segW/2-4, y+barHeight/2+1, format.Length(pieceLen))
			pdf.SetTextColor(0, 0, 0)
		}
	}

	if pat.Waste > 0 {
		pdf.SetFillColor(wasteColor.R, wasteColor.G, wasteColor.B)
		wX := x + float64(pat.Pieces)*pieceLen*scale
		wW := pat.Waste * scale
		pdf.Rect(wX, y, wW, barHeight, "FD")
		if wW > 12 {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.Text(wX+wW/2-4, y+barHeight/2+1, format.Length(pat.Waste))
		}
	}
}

// renderSummaryPage draws overall plan statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, sol model.Solution) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 10, "Cutting Plan Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Demand: %d x %s m", sol.Demand.Quantity, format.Length(sol.Demand.Length)),
		fmt.Sprintf("Stock bars used: %d", sol.TotalBars()),
		fmt.Sprintf("Material consumed: %s m", format.Length(sol.UsedLength())),
		fmt.Sprintf("Total waste: %s m", format.Length(sol.TotalWaste)),
	}
	if sol.TotalWaste > 0 {
		lines = append(lines, fmt.Sprintf("Waste share: %.2f%%", sol.WastePercent()))
	}
	lines = append(lines, fmt.Sprintf("Strategy: %s", sol.Strategy))

	y := marginTop + 15.0
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
		y += 8
	}

	// Per-stock breakdown table
	y += 5
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(60, 7, "Stock bar", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Bars used", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Pieces", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Waste (m)", "1", 1, "R", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	for _, su := range sol.Stocks {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(60, 7, fmt.Sprintf("%s m", format.Length(su.Stock.Length)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", su.BarsUsed()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", su.Pieces()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, format.Length(su.Waste()), "1", 1, "R", false, 0, "")
		y += 7
	}
}
