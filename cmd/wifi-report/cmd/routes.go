package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wifi-on-ice/dashboard/repository"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every route in the measurement table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(output(cmd))
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Route"})
		for i, route := range repository.ListRoutes(measurements) {
			t.AppendRow(table.Row{i + 1, route})
		}
		t.Render()
		return nil
	},
}
