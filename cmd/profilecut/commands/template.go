package commands

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/format"
	"github.com/piwi3910/profilecut/internal/project"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage saved job templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved job templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if len(store.Templates) == 0 {
			fmt.Println("No templates saved.")
			return nil
		}
		for _, t := range store.Templates {
			fmt.Printf("%s  %-26s %d stock types, demand %s m x %d\n",
				t.ID, t.Name, len(t.Stocks), format.Length(t.Demand.Length), t.Demand.Quantity)
			if t.Description != "" {
				fmt.Printf("          %s\n", t.Description)
			}
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show the stock and demand of a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		t := store.FindByName(args[0])
		if t == nil {
			t = store.FindByID(args[0])
		}
		if t == nil {
			return fmt.Errorf("template %q not found", args[0])
		}
		fmt.Printf("%s (%s), created %s\n", t.Name, t.ID, t.CreatedAt)
		for _, s := range t.Stocks {
			fmt.Printf("  stock %s m x %d\n", format.Length(s.Length), s.Quantity)
		}
		fmt.Printf("  demand %s m x %d\n", format.Length(t.Demand.Length), t.Demand.Quantity)
		return nil
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a template by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := project.DefaultTemplatePath()
		if err != nil {
			return err
		}
		store, err := project.LoadTemplates(path)
		if err != nil {
			return err
		}
		if !store.Remove(args[0]) {
			return fmt.Errorf("no template with ID %q", args[0])
		}
		if err := project.SaveTemplates(path, store); err != nil {
			return err
		}
		fmt.Println("Removed.")
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateRemoveCmd)
}
