package cmd

import (
	"encoding/json"

	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
	"github.com/msto63/utf8x/foundation/utils/utf8x"
	"github.com/msto63/utf8x/internal/inspect"
	"github.com/spf13/cobra"
)

func (a *app) inspectCmd() *cobra.Command {
	var format string
	var maxRows int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Break text down into scalars, bytes and display widths",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out := a.cfg.Output
			if cmd.Flags().Changed("format") {
				out.Format = format
			}
			if cmd.Flags().Changed("max-rows") {
				out.MaxRows = maxRows
			}
			if noColor {
				out.Color = false
			}
			if out.Format != "text" && out.Format != "json" {
				return usageError("inspect", out.Format, "text or json")
			}

			report := inspect.NewAnalyzer(a.util).Analyze(text)
			a.log.Debug("inspected",
				"scalars", report.Summary.Scalars,
				"graphemes", report.Summary.Graphemes,
			)

			r := inspect.Renderer{Color: out.Color, MaxRows: out.MaxRows}
			return r.Write(cmd.OutOrStdout(), report, out.Format)
		}),
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text or json)")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "limit the table rows, 0 shows all")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// capsReport is the JSON form of the caps command
type capsReport struct {
	Probed     capsJSON `json:"probed"`
	Configured capsJSON `json:"configured"`
	Effective  capsJSON `json:"effective"`
}

type capsJSON struct {
	Normalization     bool `json:"normalization"`
	OrdinalConversion bool `json:"ordinal_conversion"`
}

func toCapsJSON(c utf8x.Capabilities) capsJSON {
	return capsJSON{Normalization: c.Normalization, OrdinalConversion: c.OrdinalConversion}
}

func (a *app) capsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Show the detected and effective capabilities",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			probed := utf8x.Probe()
			configured := a.cfg.EffectiveCapabilities()
			effective := a.util.Capabilities()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(capsReport{
					Probed:     toCapsJSON(probed),
					Configured: toCapsJSON(configured),
					Effective:  toCapsJSON(effective),
				}); err != nil {
					return mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "caps", err)
				}
				return nil
			}

			printLine(cmd, "probed:    ", probed)
			printLine(cmd, "configured:", configured)
			printLine(cmd, "effective: ", effective)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
