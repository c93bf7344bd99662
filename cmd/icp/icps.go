package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/icp/internal/types"
)

var icpsJSON bool

var icpsCmd = &cobra.Command{
	Use:   "icps",
	Short: "List customer profiles",
	Args:  cobra.NoArgs,
	RunE:  runICPs,
}

func init() {
	icpsCmd.Flags().BoolVar(&icpsJSON, "json", false, "Output in JSON format")
}

func runICPs(cmd *cobra.Command, args []string) error {
	resp := types.NewCategoriesResponse()
	if icpsJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, c := range resp.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.DisplayName, c.Description)
	}
	return w.Flush()
}
