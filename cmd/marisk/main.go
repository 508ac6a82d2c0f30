package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/marisk/marisk/internal/calculation"
	"github.com/marisk/marisk/internal/config"
	"github.com/marisk/marisk/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "marisk %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "marisk",
	Short: "Maritime regulatory and financial risk calculator",
	Long:  "CII, EU ETS and FuelEU compliance, lifecycle emissions, FFA risk and payment analytics for shipping portfolios",
}

// newEngine builds a calculation engine, honoring a regulatory table
// override when one is given.
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, error) {
	regulatoryFile, _ := cmd.Flags().GetString("regulatory-config")

	var engine *calculation.CalculationEngine
	if regulatoryFile != "" {
		regulatory, err := config.LoadRegulatoryFromFile(regulatoryFile)
		if err != nil {
			return nil, err
		}
		engine = calculation.NewCalculationEngineWithConfig(regulatory)
	} else {
		engine = calculation.NewCalculationEngine()
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.Logger = simpleCLILogger{}
	}
	return engine, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run the full analysis over an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		result, err := engine.RunAnalysis(configData)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		if err := output.GenerateReport(os.Stdout, result, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

var fuelsCmd = &cobra.Command{
	Use:   "fuels [fuel,fuel,...]",
	Short: "Compare lifecycle emissions across fuels",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		consumptionFlag, _ := cmd.Flags().GetFloat64("consumption")
		includeTransport, _ := cmd.Flags().GetBool("transport")
		fuels := strings.Split(args[0], ",")

		comparison := engine.CompareFuels(fuels, decimal.NewFromFloat(consumptionFlag), includeTransport)
		fmt.Println("FUEL LIFECYCLE RANKING (well-to-wake)")
		fmt.Println(strings.Repeat("-", 50))
		for i, fuel := range comparison.Results {
			fmt.Printf("%d. %-10s %s mt CO2eq  (vs HFO %s%%)\n",
				i+1, fuel.FuelType, fuel.WTWEmissionsMt.StringFixed(2), fuel.VsHfoPercent.StringFixed(2))
		}
		fmt.Printf("Switching %s -> %s saves %s mt (%s%%)\n",
			comparison.Worst, comparison.Best,
			comparison.SavingsMt.StringFixed(2), comparison.SavingsPercent.StringFixed(2))
	},
}

var hedgeCmd = &cobra.Command{
	Use:   "hedge",
	Short: "Assess paper cover against a physical freight exposure",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		paper, _ := cmd.Flags().GetFloat64("paper")
		physical, _ := cmd.Flags().GetFloat64("physical")

		hedge := engine.SuggestHedgeRatio(decimal.NewFromFloat(paper), decimal.NewFromFloat(physical))
		fmt.Printf("Hedge ratio: %s\n", hedge.HedgeRatio.String())
		fmt.Printf("Basis risk:  %s\n", output.FormatCurrency(hedge.BasisRisk))
		fmt.Printf("Assessment:  %s\n", hedge.Assessment)
	},
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	analyzeCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	analyzeCmd.Flags().String("regulatory-config", "", "Path to a regulatory table override file")

	fuelsCmd.Flags().Float64P("consumption", "c", 1000, "Fuel consumption in metric tonnes")
	fuelsCmd.Flags().BoolP("transport", "t", false, "Model upstream transport from per-mode factors")
	fuelsCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	fuelsCmd.Flags().String("regulatory-config", "", "Path to a regulatory table override file")

	hedgeCmd.Flags().Float64P("paper", "p", 0, "Paper notional")
	hedgeCmd.Flags().Float64P("physical", "e", 0, "Physical exposure")
	hedgeCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	hedgeCmd.Flags().String("regulatory-config", "", "Path to a regulatory table override file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fuelsCmd)
	rootCmd.AddCommand(hedgeCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
