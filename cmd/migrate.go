/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemods/apollo-migrate/core/logger"
	"github.com/codemods/apollo-migrate/core/migrator"
)

var (
	skipManifest bool
	skipTsconfig bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [path]",
	Short: "Rewrite legacy Apollo imports across the project",
	Long: `Rewrites every legacy Apollo import in the project tree to its
@apollo/client v3 / apollo-angular v2 replacement, updates package.json,
and enables allowSyntheticDefaultImports in the TypeScript config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger.Debug("migrate called")

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		m, err := migrator.NewMigrator(root, migrator.Options{
			SkipManifest: skipManifest,
			SkipTsconfig: skipTsconfig,
		})
		if err != nil {
			return err
		}

		report, err := m.Run()
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Print(report.Summary())
		return nil
	},
}

func resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&skipManifest, "skip-manifest", false, "Do not touch package.json")
	migrateCmd.Flags().BoolVar(&skipTsconfig, "skip-tsconfig", false, "Do not touch the TypeScript config")
}
