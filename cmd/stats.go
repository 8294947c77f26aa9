package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the user's topic weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap, err := env.engine.CurrentWeights(cmd.Context(), env.user)
		if err != nil {
			return err
		}

		fmt.Printf("User: %s\n", env.user)
		fmt.Printf("Pool: %d questions\n\n", env.engine.PoolSize())

		if len(snap) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		keys := make([]string, 0, len(snap))
		for k := range snap {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("%-40s %6.1f\n", k, snap[k])
		}
		return nil
	},
}
