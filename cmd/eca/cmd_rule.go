package main

import (
	"fmt"
	"strconv"

	"eca/internal/elementary"
	"github.com/spf13/cobra"
)

func newRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rule <code>",
		Short: "Show the neighbourhood table of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rule code %q is not an integer", args[0])
			}
			table, err := elementary.NewRuleTable(code)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				entries := make(map[string]int, table.Len())
				for _, e := range table.Entries() {
					entries[e.Pattern] = int(e.Next)
				}
				return writeJSON(out, map[string]any{
					"rule":    table.Code(),
					"binary":  fmt.Sprintf("%08b", table.Code()),
					"entries": entries,
				})
			}

			fmt.Fprintf(out, "Rule %d (%08b)\n\n", table.Code(), table.Code())
			for _, e := range table.Entries() {
				fmt.Fprintf(out, "  %s -> %d\n", e.Pattern, e.Next)
			}
			return nil
		},
	}
}
