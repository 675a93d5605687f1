package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebrw/tablemend/internal/config"
	"github.com/calebrw/tablemend/internal/export"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export a table instance as a SQL dump",
	Long: `Loads a table, applies its YAML schema and writes a SQL dump: a CREATE
TABLE statement carrying the declared constraints followed by one INSERT
per row. Writes to stdout unless --output is given.`,
	RunE: runExportCmd,
}

var (
	exportConfigPath string
	exportInput      string
	exportSchema     string
	exportTable      string
	exportOutput     string
)

func init() {
	exportCommand.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	exportCommand.Flags().StringVarP(&exportInput, "input", "i", "", "Path to the table input (.csv or .json)")
	exportCommand.Flags().StringVarP(&exportSchema, "schema", "s", "", "Path to the YAML table schema")
	exportCommand.Flags().StringVarP(&exportTable, "table", "t", "", "Table name (defaults to the input file name)")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "", "Path for the SQL dump (defaults to stdout)")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(exportConfigPath, config.Config{
		Input:  exportInput,
		Schema: exportSchema,
		Table:  exportTable,
		Output: exportOutput,
	})
	if err != nil {
		return err
	}

	table, _, err := loadTable(cfg.Input, cfg.Schema, cfg.Table)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := export.WriteSQL(out, table); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"table": table.Name,
		"rows":  len(table.Rows),
	}).Info("SQL export complete")
	return nil
}
