package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecometric/footprint/internal/factors"
)

func newFactorsCmd() *cobra.Command {
	var (
		region  string
		country string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factor table resolved for a region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			registry, err := factors.NewRegistry(logger)
			if err != nil {
				return err
			}

			reg, err := factors.ParseRegion(region, country)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Emission factors for %s (data vintage %s)\n\n", reg, registry.Version())
			for _, key := range registry.Keys() {
				resolved, err := registry.Resolve(reg, key)
				if err != nil {
					return err
				}
				global, _ := registry.Resolve(factors.GlobalRegion(), key)
				marker := ""
				if resolved != global {
					marker = "  (regional override)"
				}
				fmt.Fprintf(out, "  %-22s %8.3f kg CO2e/unit%s\n", key, resolved, marker)
			}

			if reg.IsAfrica() {
				if name := registry.CountryName(reg.Country()); name != "" {
					fmt.Fprintf(out, "\nGrid mix: %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "global", "region scope (global, africa)")
	cmd.Flags().StringVar(&country, "country", "", "African country code (NG, ZA, KE, GH, EG, ET, SSA)")

	return cmd
}
