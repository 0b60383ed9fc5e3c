package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/dodge3d/audio"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/game"
	"github.com/lixenwraith/dodge3d/input"
	"github.com/lixenwraith/dodge3d/logging"
	"github.com/lixenwraith/dodge3d/render"
)

const (
	moveStep = 0.25 // World units per key press
	turnStep = 0.1  // Radians per key press
)

type playFlags struct {
	logFile  string
	mute     bool
	scale    float32
	bindings map[string]string
}

// NewPlayCmd creates the interactive terminal subcommand
func NewPlayCmd(g *globalFlags) *cobra.Command {
	f := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal with a top-down view",
		Long: `Play a session in real time. The terminal shows a top-down view aligned
with the camera; arrows and wasd move the camera, space fires, f toggles auto fire,
r reloads, t places the turret ahead, n starts a new round and q quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, g, f)
		},
	}

	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file instead of discarding them")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "disable audio")
	cmd.Flags().Float32Var(&f.scale, "scale", 2, "terminal rows per world unit")
	cmd.Flags().StringToStringVar(&f.bindings, "bind", nil, "key=action overrides, e.g. --bind x=fire,space=reload")
	return cmd
}

// commandSink queues session commands for the tick goroutine
type commandSink interface {
	Submit(cmd game.Command) bool
}

// applyIntent maps one input intent to camera moves, audio toggles or queued session commands
// Returns true when the intent ends the program
func applyIntent(it input.IntentType, sink commandSink, pose *game.ManualPose, sound *audio.SoundManager) bool {
	switch it {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		if sound != nil {
			sound.ToggleMute()
		}
	case input.IntentTap:
		sink.Submit(func(s *game.Session) { s.Tap() })
	case input.IntentHoldToggle:
		sink.Submit(func(s *game.Session) {
			if s.Held() {
				s.Release()
				return
			}
			s.Hold()
		})
	case input.IntentReload:
		sink.Submit(func(s *game.Session) { s.Reload() })
	case input.IntentSpawnTurret:
		sink.Submit(func(s *game.Session) { s.SpawnTurretAhead() })
	case input.IntentDespawnTurret:
		sink.Submit(func(s *game.Session) { s.DespawnTurret() })
	case input.IntentNewRound:
		sink.Submit(func(s *game.Session) { s.Reset() })
	case input.IntentMoveForward:
		pose.Move(moveStep, 0)
	case input.IntentMoveBack:
		pose.Move(-moveStep, 0)
	case input.IntentStrafeLeft:
		pose.Move(0, -moveStep)
	case input.IntentStrafeRight:
		pose.Move(0, moveStep)
	case input.IntentTurnLeft:
		pose.Turn(turnStep)
	case input.IntentTurnRight:
		pose.Turn(-turnStep)
	}
	return false
}

func runPlay(cmd *cobra.Command, g *globalFlags, f *playFlags) (err error) {
	var logOut io.Writer = io.Discard
	if f.logFile != "" {
		file, openErr := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return oops.In("cli").Code("log_file").With("path", f.logFile).Wrapf(openErr, "open log file")
		}
		defer file.Close()
		logOut = file
	}
	log, err := g.newLoggerTo(logOut)
	if err != nil {
		return err
	}

	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return err
	}
	keys := input.DefaultKeyTable()
	if len(f.bindings) > 0 {
		over, err := input.LoadKeyConfig(f.bindings)
		if err != nil {
			return err
		}
		keys.Merge(over)
	}

	audioCfg, err := audio.LoadConfig()
	if err != nil {
		return err
	}
	if f.mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Audio is optional, keep playing silently
		logging.LogError(log, "audio unavailable", err)
	}
	defer sound.Cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pose := game.NewManualPose()
	session, err := game.NewSession(ctx, cfg, pose.Pose(0), log, nil)
	if err != nil {
		return err
	}
	defer session.Close()
	session.HUD.Observe(sound.OnHUD)

	screen, err := render.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	view := render.NewTerminalRenderer(screen)
	view.SetScale(f.scale)

	driver := game.NewDriver(session, pose)
	driver.Start()
	defer driver.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	eg.Go(func() error {
		defer close(quit)
		for {
			select {
			case <-egCtx.Done():
				return nil
			case snap := <-driver.Frames():
				view.RenderFrame(snap)
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventResize:
					view.Resize()
					screen.Sync()
				case *tcell.EventKey:
					if applyIntent(keys.Lookup(ev), driver, pose, sound) {
						return nil
					}
				}
			}
		}
	})
	err = eg.Wait()

	log.Info("play finished", "session", session.ID().String(), "ticks", driver.Ticks())
	return err
}
