package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/profilecut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each bar label's QR code.
type LabelInfo struct {
	StockLabel  string  `json:"stock_label"`
	StockLength float64 `json:"stock_length_m"`
	PieceLength float64 `json:"piece_length_m"`
	Pieces      int     `json:"pieces"`
	Waste       float64 `json:"waste_m"`
	BarNumber   int     `json:"bar"`
	BarTotal    int     `json:"of"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per cut bar. Each
// label carries the stock type, the piece breakdown, and a QR code encoding
// the bar metadata as JSON, laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, sol model.Solution) error {
	if len(sol.Stocks) == 0 {
		return fmt.Errorf("no cutting plan to generate labels for")
	}

	var labels []LabelInfo
	for _, su := range sol.Stocks {
		bar := 0
		total := su.BarsUsed()
		for _, g := range su.Groups {
			for r := 0; r < g.Repeat; r++ {
				bar++
				labels = append(labels, LabelInfo{
					StockLabel:  su.Stock.Label,
					StockLength: su.Stock.Length,
					PieceLength: sol.Demand.Length,
					Pieces:      g.Pattern.Pieces,
					Waste:       g.Pattern.Waste,
					BarNumber:   bar,
					BarTotal:    total,
				})
			}
		}
	}
	if len(labels) == 0 {
		return fmt.Errorf("no bars cut to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		slot := i % labelsPerPage
		col := slot % labelCols
		row := slot / labelCols
		x := labelMarginLeft + float64(col)*(labelWidth+labelPadding)
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, label, x, y); err != nil {
			return err
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label: QR code on the left, text on the right.
func renderLabel(pdf *fpdf.Fpdf, label LabelInfo, x, y float64) error {
	payload, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("encode label metadata: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	name := fmt.Sprintf("qr-%s-%d", label.StockLabel, label.BarNumber)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x+labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding + qrSize + labelPadding
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(textX, y+6, label.StockLabel)

	pdf.SetFont("Helvetica", "", 7)
	pdf.Text(textX, y+11, fmt.Sprintf("Bar %d of %d", label.BarNumber, label.BarTotal))
	pdf.Text(textX, y+15, fmt.Sprintf("%d x %g m", label.Pieces, label.PieceLength))
	if label.Waste > 0 {
		pdf.Text(textX, y+19, fmt.Sprintf("Offcut %g m", label.Waste))
	}
	return nil
}
