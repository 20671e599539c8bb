package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travel_planner/internal/adapters/console"
	"travel_planner/internal/adapters/report"
)

var planPDF bool

var planCmd = &cobra.Command{
	Use:   "plan <destination>",
	Short: "Plan one trip and print the summary",
	Long: `Plan researches a single destination and prints the travel summary
to stdout. With --pdf it also writes the full travel guide.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planner, cleanup, err := buildPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		destination := strings.Join(args, " ")
		plan, err := planner.Plan(cmd.Context(), destination)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		render := func(s string) string { return s }
		if !plain {
			render = console.NewRenderer()
		}
		fmt.Fprintln(out, render(plan.Summary))
		if plan.Degraded {
			fmt.Fprintln(out, "Note: parts of this plan come from the built-in demo guide.")
		}

		if planPDF {
			path, err := report.NewWriter(cfg.OutputDir).Write(cmd.Context(), plan)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Travel guide written to "+path)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planPDF, "pdf", false, "also write the PDF travel guide")
	rootCmd.AddCommand(planCmd)
}
