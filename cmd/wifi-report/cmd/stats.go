package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wifi-on-ice/dashboard/dashboard"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Data rate and device statistics per route",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		stats := dashboard.RouteStatistics(dashboard.FilterRoutes(measurements, selectedRoutes(cmd)))

		t := table.NewWriter()
		t.SetOutputMirror(output(cmd))
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Route", "Samples", "Minutes", "Mean rate", "Std dev", "Mean devices", "Max disruption", "Dominant category"})
		for _, s := range stats {
			t.AppendRow(table.Row{
				s.Route,
				s.Samples,
				fmt.Sprintf("%.1f", s.TotalMinutes),
				fmt.Sprintf("%.2f", s.MeanDataRate),
				fmt.Sprintf("%.2f", s.StdDevDataRate),
				fmt.Sprintf("%.1f", s.MeanDevices),
				fmt.Sprintf("%.2f", s.MaxDisruption),
				s.DominantCategory,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	statsCmd.Flags().StringArrayVarP(&routes, "route", "r", nil, "route to include (repeatable, default: preset routes)")
}
