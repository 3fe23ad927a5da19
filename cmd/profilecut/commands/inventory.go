package commands

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/model"
	"github.com/piwi3910/profilecut/internal/project"
	"github.com/spf13/cobra"
)

var (
	invAddLength   float64
	invAddMaterial string
	invAddPrice    float64
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage saved stock bar presets",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved bar presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		logger.Debug("inventory loaded", "path", path, "bars", len(inv.Bars))
		if len(inv.Bars) == 0 {
			fmt.Println("Inventory is empty.")
			return nil
		}
		for _, b := range inv.Bars {
			fmt.Printf("%s  %-26s %6s m  %-10s %8.2f\n",
				b.ID, b.Name, format.Length(b.Length), b.Material, b.PricePerBar)
		}
		return nil
	},
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a bar preset to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if invAddLength <= 0 {
			return fmt.Errorf("--length must be positive")
		}
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		preset := model.NewBarPreset(args[0], invAddLength, invAddMaterial, invAddPrice)
		inv.Bars = append(inv.Bars, preset)
		if err := project.SaveInventory(path, inv); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", preset.Name, preset.ID)
		return nil
	},
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a bar preset by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		if !inv.Remove(args[0]) {
			return fmt.Errorf("no preset with ID %q", args[0])
		}
		if err := project.SaveInventory(path, inv); err != nil {
			return err
		}
		fmt.Println("Removed.")
		return nil
	},
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge presets from another inventory JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		merged, err := project.ImportInventory(args[0], inv)
		if err != nil {
			return err
		}
		if err := project.SaveInventory(path, merged); err != nil {
			return err
		}
		fmt.Printf("Inventory now has %d presets.\n", len(merged.Bars))
		return nil
	},
}

func init() {
	inventoryAddCmd.Flags().Float64VarP(&invAddLength, "length", "l", 0, "Bar length in meters")
	inventoryAddCmd.Flags().StringVarP(&invAddMaterial, "material", "m", "", "Material name")
	inventoryAddCmd.Flags().Float64VarP(&invAddPrice, "price", "p", 0, "Price per bar")
	inventoryAddCmd.MarkFlagRequired("length")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryRemoveCmd)
	inventoryCmd.AddCommand(inventoryImportCmd)
}
