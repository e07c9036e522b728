/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codemods/apollo-migrate/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of apollo-migrate",
	Long:  `Displays the version of apollo-migrate.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("apollo-migrate %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
