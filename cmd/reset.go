package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the user's answers, weights, and events",
	Long:  "Delete all per-user data. The shared question pool is untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete all data for user %q? [y/N] ", env.user)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := env.store.ResetUser(cmd.Context(), env.user); err != nil {
			return fmt.Errorf("reset user: %w", err)
		}
		fmt.Printf("User %q reset.\n", env.user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
