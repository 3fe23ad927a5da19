package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/profilecut/internal/engine"
	"github.com/piwi3910/profilecut/internal/export"
	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/importer"
	"github.com/piwi3910/profilecut/internal/milp"
	"github.com/piwi3910/profilecut/internal/model"
	"github.com/piwi3910/profilecut/internal/project"
	"github.com/piwi3910/profilecut/internal/request"
	"github.com/spf13/cobra"
)

var (
	solveStocks   []string
	solveDemand   string
	solveFrom     string
	solveFields   []string
	solveTemplate string
	solveSaveTmpl string
	solvePDF      string
	solveDXF      string
	solveLabels   string
	solveCompare  bool
	solveOffcuts  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute a cutting plan for the given stock and demand",
	Long: `Solve computes how many pieces to cut from each stock bar so that
the demanded quantity is met with minimal total waste. Stock can be given
with repeated --stock flags ("length:quantity"), imported from a CSV or
XLSX file with --from, or loaded from a saved template with --template.`,
	Example: `  profilecut solve --stock 5:3 --demand 2:5
  profilecut solve --from stock.xlsx --demand 1.2:40 --pdf plan.pdf
  profilecut solve --template "window frames" --compare`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringArrayVarP(&solveStocks, "stock", "s", nil, `Stock bar as "length:quantity" (repeatable)`)
	solveCmd.Flags().StringVarP(&solveDemand, "demand", "d", "", `Demanded piece as "length:quantity"`)
	solveCmd.Flags().StringVarP(&solveFrom, "from", "f", "", "Import stock bars from a CSV or XLSX file")
	solveCmd.Flags().StringArrayVar(&solveFields, "field", nil, "Raw form field as key=value (repeatable)")
	solveCmd.Flags().StringVarP(&solveTemplate, "template", "t", "", "Load stock and demand from a saved template")
	solveCmd.Flags().StringVar(&solveSaveTmpl, "save-template", "", "Save the solved job as a template with this name")
	solveCmd.Flags().StringVar(&solvePDF, "pdf", "", "Write a PDF cutting plan to this path")
	solveCmd.Flags().StringVar(&solveDXF, "dxf", "", "Write a DXF cut layout to this path")
	solveCmd.Flags().StringVar(&solveLabels, "labels", "", "Write a PDF sheet of QR bar labels to this path")
	solveCmd.Flags().BoolVar(&solveCompare, "compare", false, "Report every applicable strategy side by side")
	solveCmd.Flags().BoolVar(&solveOffcuts, "offcuts", false, "List reusable offcuts left by the plan")
}

func runSolve(cmd *cobra.Command, args []string) error {
	job, err := buildJob()
	if err != nil {
		return err
	}

	opt := engine.New(milp.NewCPSAT(), settings())

	if solveCompare {
		reports := opt.CompareStrategies(job)
		fmt.Print(format.Reports(reports))
		return nil
	}

	sol, err := opt.Solve(job)
	if err != nil {
		return err
	}
	fmt.Print(format.Text(sol))

	if solveOffcuts {
		printOffcuts(sol)
	}
	if err := writeExports(sol); err != nil {
		return err
	}
	if solveSaveTmpl != "" {
		if err := saveTemplate(job); err != nil {
			return err
		}
	}
	rememberJob(job)
	return nil
}

// rememberJob records the solved job in the config's recent list. Failures
// are logged, never fatal: history is a convenience.
func rememberJob(job model.Job) {
	name := job.Name
	if name == "" {
		name = fmt.Sprintf("%d x %s m from %d stock type(s)",
			job.Demand.Quantity, format.Length(job.Demand.Length), len(job.Stocks))
	}
	recent := append([]string{name}, config.RecentJobs...)
	if len(recent) > 10 {
		recent = recent[:10]
	}
	config.RecentJobs = recent
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		logger.Warn("could not record recent job", "error", err)
	}
}

// buildJob funnels every input source through the same form parser so
// that validation behaves identically for flags, files and templates.
func buildJob() (model.Job, error) {
	if solveTemplate != "" {
		return jobFromTemplate(solveTemplate)
	}

	form := map[string]string{}
	for _, f := range solveFields {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return model.Job{}, fmt.Errorf("invalid --field %q, expected key=value", f)
		}
		form[key] = value
	}

	next := 1
	for _, s := range solveStocks {
		length, qty, err := splitPair(s)
		if err != nil {
			return model.Job{}, fmt.Errorf("invalid --stock %q: %w", s, err)
		}
		form[fmt.Sprintf("len%d", next)] = length
		form[fmt.Sprintf("qty%d", next)] = qty
		next++
	}

	if solveFrom != "" {
		res := importer.ImportFile(solveFrom)
		for _, w := range res.Warnings {
			logger.Warn("import", "file", solveFrom, "warning", w)
		}
		if len(res.Errors) > 0 {
			return model.Job{}, fmt.Errorf("import %s: %s", solveFrom, strings.Join(res.Errors, "; "))
		}
		for _, st := range res.Stocks {
			form[fmt.Sprintf("len%d", next)] = strconv.FormatFloat(st.Length, 'f', -1, 64)
			form[fmt.Sprintf("qty%d", next)] = strconv.Itoa(st.Quantity)
			next++
		}
		logger.Debug("imported stock bars", "file", solveFrom, "count", len(res.Stocks))
	}

	if solveDemand != "" {
		length, qty, err := splitPair(solveDemand)
		if err != nil {
			return model.Job{}, fmt.Errorf("invalid --demand %q: %w", solveDemand, err)
		}
		form["demand_len"] = length
		form["demand_qty"] = qty
	}

	return request.Parse(form)
}

func jobFromTemplate(name string) (model.Job, error) {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return model.Job{}, err
	}
	t := store.FindByName(name)
	if t == nil {
		t = store.FindByID(name)
	}
	if t == nil {
		return model.Job{}, fmt.Errorf("template %q not found", name)
	}
	return t.ToJob(name), nil
}

func saveTemplate(job model.Job) error {
	path, err := project.DefaultTemplatePath()
	if err != nil {
		return err
	}
	store, err := project.LoadTemplates(path)
	if err != nil {
		return err
	}
	store.Add(model.NewJobTemplate(solveSaveTmpl, "", job.Stocks, job.Demand))
	if err := project.SaveTemplates(path, store); err != nil {
		return err
	}
	logger.Info("template saved", "name", solveSaveTmpl)
	return nil
}

func printOffcuts(sol model.Solution) {
	offcuts := model.DetectOffcuts(sol, settings().MinOffcutLength)
	if len(offcuts) == 0 {
		fmt.Println("No reusable offcuts.")
		return
	}
	fmt.Println("Reusable offcuts:")
	for _, o := range offcuts {
		fmt.Printf("  %s m x %d (from %s)\n", format.Length(o.Length), o.Count, o.StockLabel)
	}
	fmt.Printf("Total offcut length: %s m\n", format.Length(model.TotalOffcutLength(offcuts)))
}

func writeExports(sol model.Solution) error {
	if solvePDF != "" {
		if err := export.ExportPDF(solvePDF, sol); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		logger.Info("pdf written", "path", solvePDF)
	}
	if solveDXF != "" {
		if err := export.ExportDXF(solveDXF, sol); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
		logger.Info("dxf written", "path", solveDXF)
	}
	if solveLabels != "" {
		if err := export.ExportLabels(solveLabels, sol); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		logger.Info("labels written", "path", solveLabels)
	}
	return nil
}

func splitPair(s string) (length, qty string, err error) {
	l, q, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("expected length:quantity")
	}
	return l, q, nil
}
