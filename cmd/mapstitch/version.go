package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aoiumi/mapstitch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mapstitch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mapstitch version %s\n", mapstitch.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
