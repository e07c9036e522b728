/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/codemods/apollo-migrate/cmd"

func main() {
	cmd.Execute()
}
