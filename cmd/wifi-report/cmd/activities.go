package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wifi-on-ice/dashboard/dashboard"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Minutes spent per internet activity on the selected routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		chart := dashboard.BuildActivityChart(dashboard.FilterRoutes(measurements, selectedRoutes(cmd)))

		t := table.NewWriter()
		t.SetOutputMirror(output(cmd))
		t.SetStyle(table.StyleLight)
		t.SetTitle(chart.Title)
		t.AppendHeader(table.Row{chart.Labels[chart.Color], chart.Labels[chart.X], "Share"})
		for _, row := range chart.Rows {
			share := 0.0
			if chart.TotalMinutes > 0 {
				share = row.Minutes / chart.TotalMinutes * 100
			}
			t.AppendRow(table.Row{row.Activity, fmt.Sprintf("%.1f", row.Minutes), fmt.Sprintf("%.1f%%", share)})
		}
		t.AppendFooter(table.Row{"Total", fmt.Sprintf("%.1f", chart.TotalMinutes), ""})
		t.Render()
		return nil
	},
}

func init() {
	activitiesCmd.Flags().StringArrayVarP(&routes, "route", "r", nil, "route to include (repeatable, default: preset routes)")
}
