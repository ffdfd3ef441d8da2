package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snake/log"
	"github.com/lixenwraith/snake/store"
)

func newBestCmd(a *app) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Print the stored best score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBest(cmd.Context(), a, reset, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "overwrite the stored best score with 0")
	return cmd
}

func runBest(ctx context.Context, a *app, reset bool, out io.Writer) error {
	logger := setupServiceLogging(a.cfg.Log.Level)

	st, err := store.Open(a.cfg.Store, logger.With().Str(log.FieldComponent, "store").Logger())
	if err != nil {
		return err
	}
	defer st.Close()

	if reset {
		if err := st.WriteBestScore(ctx, 0); err != nil {
			return err
		}
		fmt.Fprintln(out, 0)
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scores, err := st.ReadBestScore(ctx)
	if err != nil {
		return err
	}
	best, ok := <-scores
	if !ok {
		return errors.New("best score stream closed before the first value")
	}
	fmt.Fprintln(out, best)
	return nil
}
