package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebrw/tablemend/internal/config"
	"github.com/calebrw/tablemend/internal/observability"
	"github.com/calebrw/tablemend/internal/validation"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Detect constraint violations in a table instance",
	Long: `Loads a table from a CSV or JSON file, applies the declared types and
constraints from a YAML table schema, and reports every violation found.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runCheckCmd,
}

var (
	checkConfigPath       string
	checkInput            string
	checkSchema           string
	checkTable            string
	checkReferenced       string
	checkReferencedSchema string
	checkVerbose          bool
)

func init() {
	// Config file flag (processed first)
	checkCommand.Flags().StringVar(&checkConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	checkCommand.Flags().StringVarP(&checkInput, "input", "i", "", "Path to the table input (.csv or .json)")
	checkCommand.Flags().StringVarP(&checkSchema, "schema", "s", "", "Path to the YAML table schema")
	checkCommand.Flags().StringVarP(&checkTable, "table", "t", "", "Table name (defaults to the input file name)")
	checkCommand.Flags().StringVar(&checkReferenced, "referenced", "", "Path to the referenced table input, when the schema declares a foreign key")
	checkCommand.Flags().StringVar(&checkReferencedSchema, "referenced-schema", "", "Path to the referenced table's YAML schema")
	checkCommand.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print detailed summaries")

	rootCmd.AddCommand(checkCommand)
}

// mergedConfig loads the optional config file and overlays flag values.
func mergedConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return flags, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return flags, err
	}

	return flags.MergeWithDefaults(*loaded), nil
}

func runCheckCmd(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(checkConfigPath, config.Config{
		Input:            checkInput,
		Schema:           checkSchema,
		Table:            checkTable,
		Referenced:       checkReferenced,
		ReferencedSchema: checkReferencedSchema,
		Verbose:          checkVerbose,
	})
	if err != nil {
		return err
	}
	if checkVerbose {
		cfg.Verbose = true
		logrus.SetLevel(logrus.DebugLevel)
	}

	table, link, tables, err := loadLinkedTables(cfg.Input, cfg.Schema, cfg.Table, cfg.Referenced, cfg.ReferencedSchema)
	if err != nil {
		return err
	}

	violations := validation.Check(table, link, tables)
	logrus.WithFields(logrus.Fields{
		"table":      table.Name,
		"rows":       len(table.Rows),
		"violations": len(violations),
	}).Info("constraint check complete")

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintViolations(table.Name, violations)
		columns, rows := validation.Positions(violations)
		printer.PrintHighlights(columns, rows)
		return nil
	}

	for _, v := range violations {
		fmt.Printf("row %d, %s [%s]: %s\n", v.Row, v.Column, v.Kind, v.Message)
	}
	return nil
}
