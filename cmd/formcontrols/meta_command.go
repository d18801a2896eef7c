package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/formcontrols/internal/bridge"
)

func newMetaCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Show the control registration record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := bridge.DualListboxMeta()
			if asJSON {
				return writeJSON(cmd, meta)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s)\n", meta.ControlName, meta.Version, meta.GroupName)
			fmt.Fprintln(out, meta.Description)

			rows := make([][]string, 0, len(meta.Properties))
			for _, p := range meta.Properties {
				valueField := ""
				if p.IsValueField {
					valueField = "yes"
				}
				rows = append(rows, []string{p.Name, p.Type, p.Title, valueField})
			}
			fmt.Fprintln(out, renderTable([]string{"Property", "Type", "Title", "Value"}, rows))
			fmt.Fprintf(out, "Events: %s\n", strings.Join(meta.Events, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
