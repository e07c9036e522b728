/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codemods/apollo-migrate/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "apollo-migrate",
	Short: "Migrate an Angular project to Apollo Client v3",
	Long: `apollo-migrate is a one-shot codemod that moves an Angular project off
the legacy Apollo packages (apollo-client, apollo-link-*, apollo-cache-inmemory,
graphql-tag) onto @apollo/client v3 and apollo-angular v2. It rewrites import
statements across the source tree, merging every legacy import into one
consolidated import per new module, then updates package.json and the
TypeScript config.`,
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	logger.SetVerbose(verbose)
	if logfile == "" {
		return nil
	}
	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logger.AddWriterForAll(f)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
