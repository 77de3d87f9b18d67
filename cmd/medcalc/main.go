package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"medcalc/internal/bootstrap"
	"medcalc/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var formularyPath string

	root := &cobra.Command{
		Use:           "medcalc",
		Short:         "Animal medication dose calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&formularyPath, "formulary", "", "path to a YAML formulary extending the builtin catalog")

	root.AddCommand(newTUICmd(&formularyPath))
	root.AddCommand(newCalcCmd(&formularyPath))
	root.AddCommand(newMedsCmd(&formularyPath))
	return root
}

func loadApp(formularyPath string) (*bootstrap.App, error) {
	cfg, err := config.New(formularyPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(formularyPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive dose calculator",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*formularyPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newCalcCmd(formularyPath *string) *cobra.Command {
	var med, unit, inputPath string
	var rate, conc float64

	calcCmd := &cobra.Command{
		Use:   "calc [weights...]",
		Short: "Calculate doses for a litter of weights in lbs",
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := resolveWeights(cmd, args, inputPath)
			if err != nil {
				return err
			}
			app, err := loadApp(*formularyPath)
			if err != nil {
				return err
			}
			out, err := app.DosingCLI.Calculate(context.Background(), med, rate, conc, unit, weights)
			if err != nil {
				return err
			}
			if out.Profile.Custom {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "using custom dose values")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dosing with %s: %.2f mg/kg at %.2f mg/%s\n",
				out.Profile.Name, out.Profile.DoseRateMgPerKg, out.Profile.ConcentrationMgPerUnit, out.Profile.Unit)
			for _, r := range out.Results {
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "animal %d: %s\n", r.Animal, r.Error)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "animal %d (%s lbs): %.2f %s\n", r.Animal, r.Raw, r.Dose, r.Unit)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "litter total (one dose): %.2f %s\n", out.Total, out.Unit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d animals dosed\n", out.Animals)
			return nil
		},
	}
	calcCmd.Flags().StringVar(&med, "med", "", "medication name from the formulary")
	calcCmd.Flags().Float64Var(&rate, "rate", 0, "custom dose rate in mg/kg (with --conc, overrides --med)")
	calcCmd.Flags().Float64Var(&conc, "conc", 0, "custom concentration in mg per unit (with --rate, overrides --med)")
	calcCmd.Flags().StringVar(&unit, "unit", "", "custom dose unit: mL|Pill (default mL)")
	calcCmd.Flags().StringVar(&inputPath, "input", "", "file with one weight per line, - for stdin")
	return calcCmd
}

// resolveWeights gathers the weight lines from positional args, a file,
// or stdin. Args and --input are mutually exclusive.
func resolveWeights(cmd *cobra.Command, args []string, inputPath string) (string, error) {
	if len(args) > 0 && inputPath != "" {
		return "", fmt.Errorf("pass weights as arguments or via --input, not both")
	}
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if inputPath == "" {
		return "", nil
	}
	if inputPath == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("read weights file: %w", err)
	}
	return string(b), nil
}

func newMedsCmd(formularyPath *string) *cobra.Command {
	meds := &cobra.Command{Use: "meds", Short: "Medication catalog commands"}

	meds.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List medications in the formulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*formularyPath)
			if err != nil {
				return err
			}
			items, err := app.FormularyCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no medications")
				return nil
			}
			for _, m := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f mg/kg\t%.2f mg/%s\n", m.Name, m.DoseRateMgPerKg, m.ConcentrationMgPerUnit, m.Unit)
			}
			return nil
		},
	})

	var name string
	show := &cobra.Command{
		Use:   "show --name <name>",
		Short: "Show one medication's dose data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			app, err := loadApp(*formularyPath)
			if err != nil {
				return err
			}
			m, err := app.FormularyCLI.Get(context.Background(), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\ndose rate: %.2f mg/kg\nconcentration: %.2f mg/%s\nunit: %s\n",
				m.Name, m.DoseRateMgPerKg, m.ConcentrationMgPerUnit, m.Unit, m.Unit)
			return nil
		},
	}
	show.Flags().StringVar(&name, "name", "", "medication name")
	meds.AddCommand(show)
	return meds
}
