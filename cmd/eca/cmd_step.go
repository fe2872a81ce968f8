package main

import (
	"fmt"

	"eca/internal/core"
	"eca/internal/elementary"
	"github.com/spf13/cobra"
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step [decimal]",
		Short: "Evolve an arbitrary bit pattern by one generation",
		Long: `Convert a non-negative decimal number to binary and show how that row
evolves for a single generation. Use --bits to supply the row directly.
The boundary defaults to mirror.

Examples:
  eca step 5                # 101 -> 111 under rule 110
  eca step --bits 0110100 --rule 30 --boundary toric`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			bitsFlag, _ := cmd.Flags().GetString("bits")
			var bits core.Generation
			switch {
			case bitsFlag != "" && len(args) > 0:
				return fmt.Errorf("pass either a decimal argument or --bits, not both")
			case bitsFlag != "":
				bits, err = elementary.ParseBits(bitsFlag)
			case len(args) == 1:
				bits, err = elementary.ParseDecimal(args[0])
			default:
				return fmt.Errorf("a decimal argument or --bits is required")
			}
			if err != nil {
				return err
			}

			rule := settings.Engine.Rule
			if cmd.Flags().Changed("rule") {
				rule, _ = cmd.Flags().GetInt("rule")
			}
			boundary := elementary.DefaultBitsBoundary
			if cmd.Flags().Changed("boundary") {
				v, _ := cmd.Flags().GetString("boundary")
				if boundary, err = core.ParseBoundaryMode(v); err != nil {
					return err
				}
			}
			applyOutputFlags(cmd, settings)

			engine := elementary.NewEngine(settings.Engine.Limits)
			logger.Debug("stepping bits", "bits", bits.String(), "rule", rule, "boundary", boundary)
			grid, err := engine.RunFromBits(bits, rule, boundary)
			if err != nil {
				return fmt.Errorf("step: %w", err)
			}

			w, closeOut, err := openOutput(cmd)
			if err != nil {
				return err
			}
			pixel, _ := cmd.Flags().GetBool("pixel")
			doc := newGridDocument(rule, boundary, "", grid)
			if err := writeGrid(w, settings.Render.Format, doc, grid, settings.Render, pixel); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}

	cmd.Flags().String("bits", "", "Row as a string of 0 and 1")
	cmd.Flags().Int("rule", 0, "Wolfram rule code (0-255)")
	cmd.Flags().String("boundary", "", "Edge behaviour: toric or mirror (default mirror)")
	addOutputFlags(cmd)
	return cmd
}
