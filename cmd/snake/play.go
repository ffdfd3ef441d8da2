package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/log"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
	"github.com/lixenwraith/snake/store"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), a)
		},
	}
}

func runPlay(ctx context.Context, a *app) error {
	logFile, logger := setupLogging(a.cfg.Log.Debug, a.cfg.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}

	keys := input.DefaultKeyTable()
	if len(a.cfg.Input.Bindings) > 0 {
		override, err := input.LoadKeyBindings(a.cfg.Input.Bindings)
		if err != nil {
			return fmt.Errorf("key bindings: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	st, err := store.Open(a.cfg.Store, logger.With().Str(log.FieldComponent, "store").Logger())
	if err != nil {
		return err
	}
	defer st.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash from any engine goroutine
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctrl := newController(a.cfg, st, logger, status.NewRegistry(nil))
	defer ctrl.Close()

	term := render.NewTerminal(screen, ctrl.Grid())
	queue := input.NewIntentQueue()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return ctrl.Run(gctx) })

	if a.cfg.Audio.Enabled {
		sm := audio.NewSoundManager(a.cfg.Audio.Volume, logger.With().Str(log.FieldComponent, "audio").Logger())
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			snaps, unsubscribe := ctrl.Subscribe()
			g.Go(func() error {
				defer unsubscribe()
				sm.Listen(gctx, snaps)
				return nil
			})
		}
	}

	var resized atomic.Bool
	core.Go(func() { pollInput(screen, keys, queue, &resized, cancel) })

	g.Go(func() error { return frameLoop(gctx, term, ctrl, queue, &resized) })

	return g.Wait()
}

// pollInput queues key intents until quit or screen teardown
// Intents are resolved by the frame loop so toggles see the state at processing time
func pollInput(screen tcell.Screen, keys *input.KeyTable, queue *input.IntentQueue, resized *atomic.Bool, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			intent := keys.Lookup(ev)
			if intent == input.IntentQuit {
				quit()
				return
			}
			queue.Push(intent)
		case *tcell.EventResize:
			screen.Sync()
			resized.Store(true)
		}
	}
}

// frameLoop applies queued intents at frame cadence and redraws on every published snapshot
func frameLoop(ctx context.Context, term *render.Terminal, ctrl *engine.Controller, queue *input.IntentQueue, resized *atomic.Bool) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	snaps, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snaps:
			if !ok {
				return nil
			}
			term.Draw(snap)
		case <-ticker.C:
			queue.Drain(ctrl)
			if resized.Swap(false) {
				term.Draw(ctrl.Snapshot())
			}
		}
	}
}
