package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.json>",
	Short: "Import questions into the pool",
	Long:  "Validate a question-pool JSON document and ingest every new question. Duplicates are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open pool file: %w", err)
		}
		defer f.Close()

		res, err := env.engine.ImportPool(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import pool: %w", err)
		}

		fmt.Printf("Imported %d of %d questions (%d duplicates skipped).\n",
			res.Ingested, res.Total, res.Duplicates)
		fmt.Printf("Pool now holds %d questions.\n", env.engine.PoolSize())
		return nil
	},
}
