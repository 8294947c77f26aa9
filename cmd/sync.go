package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvarma/quizfeed/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local weight events and pull remote deltas",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		url := env.cfg.RemoteURL()
		if url == "" {
			return fmt.Errorf("no remote configured: set QUIZFEED_REMOTE_URL or remote.url in the config file")
		}

		remote := syncer.NewHTTPRemote(url, env.cfg.RemoteToken())
		rec := syncer.NewReconciler(env.cfg.SyncerConfig(),
			env.store.EventRepo(), remote, env.engine, nil, env.log)
		env.engine.UseRemote(rec)

		if err := env.engine.Sync(cmd.Context(), env.user); err != nil {
			var mismatch *syncer.ErrSchemaMismatch
			if errors.As(err, &mismatch) {
				return fmt.Errorf("remote schema %s is incompatible: %w", mismatch.RemoteVersion, err)
			}
			return err
		}

		fmt.Println("Sync complete.")
		return nil
	},
}
