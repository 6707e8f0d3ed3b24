package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iniq",
	Short: "Iniq is a tool for introspecting .ini configuration files.",
	Long:  "Iniq is a tool for introspecting .ini configuration files. It can look up a single key in one pass or parse a whole file into its sections.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Iniq",
	Long:  `All software has versions. This is Iniq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Iniq v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(iniCmd)
}
