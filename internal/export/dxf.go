package export

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// DXF layout constants. Bars are drawn to scale in drawing units
// (1 unit = 1 cm), stacked top to bottom.
const (
	dxfScale      = 100.0 // drawing units per meter
	dxfBarHeight  = 10.0
	dxfRowSpacing = 20.0
	dxfTextHeight = 4.0
)

// ExportDXF writes the cutting plan as a DXF drawing for saw-stop setups:
// each bar group becomes one outlined bar with cut-mark lines at every
// piece boundary and a repetition note.
func ExportDXF(path string, sol model.Solution) error {
	if len(sol.Stocks) == 0 {
		return fmt.Errorf("no cutting plan to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("BARS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}
	if _, err := d.AddLayer("CUTS", color.Red, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}

	y := 0.0
	for _, su := range sol.Stocks {
		for _, g := range su.Groups {
			if err := drawBarGroup(d, su.Stock, sol.Demand, g, y); err != nil {
				return err
			}
			y -= dxfBarHeight + dxfRowSpacing
		}
	}

	return d.SaveAs(path)
}

// drawBarGroup draws one bar outline with its cut marks and annotation.
func drawBarGroup(d *dxf.Drawing, stock model.StockBar, demand model.Demand, g model.CutGroup, y float64) error {
	w := stock.Length * dxfScale

	if err := d.ChangeLayer("BARS"); err != nil {
		return err
	}
	// Bar outline
	outline := [][2]float64{
		{0, y}, {w, y}, {w, y - dxfBarHeight}, {0, y - dxfBarHeight},
	}
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}

	label := fmt.Sprintf("%s m: [%s m x %d] x %d", format.Length(stock.Length),
		format.Length(demand.Length), g.Pattern.Pieces, g.Repeat)
	if g.Pattern.Waste > 0 {
		label += fmt.Sprintf(", offcut %s m", format.Length(g.Pattern.Waste))
	}
	if _, err := d.Text(label, 0, y+dxfTextHeight, 0, dxfTextHeight); err != nil {
		return err
	}

	if err := d.ChangeLayer("CUTS"); err != nil {
		return err
	}
	// Cut marks at every piece boundary; the final mark separates the last
	// piece from the offcut, so it is skipped when there is no offcut.
	marks := g.Pattern.Pieces
	if g.Pattern.Waste == 0 {
		marks--
	}
	for i := 1; i <= marks; i++ {
		x := float64(i) * demand.Length * dxfScale
		if _, err := d.Line(x, y, 0, x, y-dxfBarHeight, 0); err != nil {
			return err
		}
	}
	return nil
}
