package commands

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/model"
	"github.com/piwi3910/profilecut/internal/project"
	"github.com/spf13/cobra"
)

var (
	estDemand string
	estBar    float64
	estPreset string
	estWaste  float64
	estPrice  float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate how many bars to purchase for a demand",
	Long: `Estimate computes a quick purchasing figure for a single bar length,
without running the exact optimizer. Use --preset to pull length and price
from the inventory, or give --bar and --price directly.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estDemand, "demand", "d", "", `Demanded piece as "length:quantity"`)
	estimateCmd.Flags().Float64VarP(&estBar, "bar", "b", 0, "Stock bar length in meters")
	estimateCmd.Flags().StringVarP(&estPreset, "preset", "p", "", "Inventory preset name to estimate with")
	estimateCmd.Flags().Float64VarP(&estWaste, "waste", "w", -1, "Waste factor percentage (default from config)")
	estimateCmd.Flags().Float64Var(&estPrice, "price", 0, "Price per bar")
	estimateCmd.MarkFlagRequired("demand")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	lenStr, qtyStr, err := splitPair(estDemand)
	if err != nil {
		return fmt.Errorf("invalid --demand %q: %w", estDemand, err)
	}
	var demand model.Demand
	demand.Length, err = strconv.ParseFloat(lenStr, 64)
	if err != nil {
		return fmt.Errorf("invalid --demand length %q: %w", lenStr, err)
	}
	demand.Quantity, err = strconv.Atoi(qtyStr)
	if err != nil {
		return fmt.Errorf("invalid --demand quantity %q: %w", qtyStr, err)
	}

	barLength := estBar
	price := estPrice
	if estPreset != "" {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		preset := inv.FindBarByName(estPreset)
		if preset == nil {
			return fmt.Errorf("inventory preset %q not found", estPreset)
		}
		barLength = preset.Length
		if price == 0 {
			price = preset.PricePerBar
		}
	}
	if barLength <= 0 {
		return fmt.Errorf("a bar length is required: give --bar or --preset")
	}

	waste := estWaste
	if waste < 0 {
		waste = config.DefaultWastePercent
	}

	est := model.CalculatePurchaseEstimate(demand, barLength, waste, price)
	if est.PiecesPerBar == 0 {
		return fmt.Errorf("a %s m bar cannot yield a single %s m piece",
			format.Length(barLength), format.Length(demand.Length))
	}

	fmt.Printf("Total demand:   %s m (%d x %s m)\n",
		format.Length(est.TotalDemandLength), demand.Quantity, format.Length(demand.Length))
	fmt.Printf("Pieces per bar: %d\n", est.PiecesPerBar)
	fmt.Printf("Bars needed:    %d (exact %.2f)\n", est.BarsNeededMin, est.BarsNeededExact)
	fmt.Printf("With %g%% waste: %d bars\n", est.WastePercent, est.BarsWithWaste)
	if est.PricePerBar > 0 {
		fmt.Printf("Estimated cost: %.2f\n", est.EstimatedCost)
	}
	return nil
}
