package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/topoc/internal/session"
	"github.com/agentic-research/topoc/internal/store"
)

var buildCmd = &cobra.Command{
	Use:   "build [classes.yaml] [output.db]",
	Short: "Define classes and export the registry to a SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		output := args[1]

		data, err := os.ReadFile(source)
		if err != nil {
			return err
		}

		sess := session.New(debugSink())
		if err := sess.Run(data); err != nil {
			return fmt.Errorf("pre-process %s: %w", source, err)
		}

		_ = os.Remove(output) // rebuilt from scratch on every export

		writer, err := store.NewSQLiteWriter(output)
		if err != nil {
			return err
		}
		defer func() { _ = writer.Close() }()

		start := time.Now()
		fmt.Printf("Building %s from %s...\n", output, source)
		if err := writer.Write(sess.Registry()); err != nil {
			return err
		}
		fmt.Printf("Done in %v.\n", time.Since(start))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
