package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics")
}

var rootCmd = &cobra.Command{
	Use:   "topoc",
	Short: "Topoc: topology class-definition compiler front end",
}

// debugSink returns the diagnostics writer for a session; nil discards.
func debugSink() io.Writer {
	if verbose {
		return os.Stdout
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
