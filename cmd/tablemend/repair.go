package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebrw/tablemend/internal/config"
	"github.com/calebrw/tablemend/internal/observability"
	"github.com/calebrw/tablemend/internal/repair"
	"github.com/calebrw/tablemend/internal/validation"
)

var repairCommand = &cobra.Command{
	Use:   "repair",
	Short: "Generate candidate repairs for a table's constraint violations",
	Long: `Detects constraint violations and enumerates minimal-change candidate
repairs: combinatorial primary-key repair, keep-first/keep-last general
repair, partial (hybrid) repair for type mismatches, and foreign-key
dangling-row repair. The user picks a candidate downstream; this command
only lists them.`,
	RunE: runRepairCmd,
}

var (
	repairConfigPath       string
	repairInput            string
	repairSchema           string
	repairTable            string
	repairReferenced       string
	repairReferencedSchema string
	repairMaxCombinations  int
	repairVerbose          bool
)

func init() {
	repairCommand.Flags().StringVar(&repairConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	repairCommand.Flags().StringVarP(&repairInput, "input", "i", "", "Path to the table input (.csv or .json)")
	repairCommand.Flags().StringVarP(&repairSchema, "schema", "s", "", "Path to the YAML table schema")
	repairCommand.Flags().StringVarP(&repairTable, "table", "t", "", "Table name (defaults to the input file name)")
	repairCommand.Flags().StringVar(&repairReferenced, "referenced", "", "Path to the referenced table input, when the schema declares a foreign key")
	repairCommand.Flags().StringVar(&repairReferencedSchema, "referenced-schema", "", "Path to the referenced table's YAML schema")
	repairCommand.Flags().IntVar(&repairMaxCombinations, "max-combinations", 0, "Cap on primary-key combinatorial enumeration (default 1000)")
	repairCommand.Flags().BoolVarP(&repairVerbose, "verbose", "v", false, "Print detailed summaries")

	rootCmd.AddCommand(repairCommand)
}

func runRepairCmd(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(repairConfigPath, config.Config{
		Input:            repairInput,
		Schema:           repairSchema,
		Table:            repairTable,
		Referenced:       repairReferenced,
		ReferencedSchema: repairReferencedSchema,
		MaxCombinations:  repairMaxCombinations,
		Verbose:          repairVerbose,
	})
	if err != nil {
		return err
	}
	if repairVerbose {
		cfg.Verbose = true
		logrus.SetLevel(logrus.DebugLevel)
	}

	table, link, tables, err := loadLinkedTables(cfg.Input, cfg.Schema, cfg.Table, cfg.Referenced, cfg.ReferencedSchema)
	if err != nil {
		return err
	}

	violations := validation.Check(table, link, tables)
	candidates := repair.Generate(violations, table, repair.Options{MaxCombinations: cfg.MaxCombinations})
	candidates = append(candidates, repair.ForeignKeyRepairs(violations, table)...)

	logrus.WithFields(logrus.Fields{
		"table":      table.Name,
		"violations": len(violations),
		"candidates": len(candidates),
	}).Info("repair generation complete")

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintViolations(table.Name, violations)
		printer.PrintCandidates(candidates)
		return nil
	}

	for _, c := range candidates {
		fmt.Printf("%s: %d rows - %s\n", c.Name, len(c.Rows), c.Description)
	}
	return nil
}
