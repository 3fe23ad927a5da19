package commands

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/project"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write config, inventory and templates to a single JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		templates, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], config, inv, templates); err != nil {
			return err
		}
		fmt.Printf("Exported %d presets and %d templates to %s\n",
			len(inv.Bars), len(templates.Templates), args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore config, inventory and templates from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(project.DefaultConfigPath(), data.Config); err != nil {
			return err
		}
		invPath, err := project.DefaultInventoryPath()
		if err != nil {
			return err
		}
		if err := project.SaveInventory(invPath, data.Inventory); err != nil {
			return err
		}
		tmplPath, err := project.DefaultTemplatePath()
		if err != nil {
			return err
		}
		if err := project.SaveTemplates(tmplPath, data.Templates); err != nil {
			return err
		}
		fmt.Printf("Restored backup from %s (version %s)\n", args[0], data.Version)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}
