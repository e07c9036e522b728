/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codemods/apollo-migrate/core/logger"
	"github.com/codemods/apollo-migrate/core/migrator"
)

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Preview the migration without writing anything",
	Long: `Computes every per-file patch the migration would apply and prints
the diffs plus a summary, leaving the project untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger.Debug("plan called")

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		m, err := migrator.NewMigrator(root, migrator.Options{DryRun: true})
		if err != nil {
			return err
		}

		report, err := m.Run()
		if err != nil {
			return fmt.Errorf("plan failed: %w", err)
		}

		fmt.Print(report.Diffs())
		fmt.Print(report.Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
