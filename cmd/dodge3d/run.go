package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/game"
	"github.com/lixenwraith/dodge3d/logging"
	"github.com/lixenwraith/dodge3d/status"
)

const shutdownTimeout = 5 * time.Second

type runFlags struct {
	ticks       int
	fireEvery   int
	turretAt    int
	strafe      float32
	strafeEvery time.Duration
	snapshots   string
	metricsAddr string
}

// NewRunCmd creates the headless run subcommand
func NewRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scripted headless session",
		Long: `Run a session without a terminal or wall clock. The camera strafes,
the player fires on a fixed cadence and reloads when empty, and the turret is placed
ahead after a delay. Prints a YAML summary; optionally streams msgpack snapshots.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHeadless(cmd, g, f)
		},
	}

	cmd.Flags().IntVar(&f.ticks, "ticks", 600, "number of ticks to simulate")
	cmd.Flags().IntVar(&f.fireEvery, "fire-every", 15, "ticks between player shots, 0 disables")
	cmd.Flags().IntVar(&f.turretAt, "turret-at", 30, "tick at which the turret spawns, negative disables")
	cmd.Flags().Float32Var(&f.strafe, "strafe", 1.5, "camera sway amplitude in world units")
	cmd.Flags().DurationVar(&f.strafeEvery, "strafe-period", 3*time.Second, "camera sway period")
	cmd.Flags().StringVar(&f.snapshots, "snapshots", "", "write msgpack snapshots to this file")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "metrics/health HTTP address (empty = disabled)")
	return cmd
}

func runHeadless(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	log, err := g.newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		logging.LogError(log, "config rejected", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		ready   atomic.Bool
		metrics *status.Metrics
		serveCh <-chan error
	)
	if f.metricsAddr != "" {
		srv := status.NewServer(f.metricsAddr, ready.Load, log)
		serveCh, err = srv.Start()
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if stopErr := srv.Stop(shutdownCtx); stopErr != nil {
				logging.LogError(log, "status server shutdown", stopErr)
			}
		}()
		metrics = srv.Metrics()
	}

	var out *game.SnapshotWriter
	if f.snapshots != "" {
		file, err := os.Create(f.snapshots)
		if err != nil {
			return oops.In("cli").Code("snapshot_file").With("path", f.snapshots).Wrapf(err, "create snapshot file")
		}
		defer file.Close()
		buf := bufio.NewWriter(file)
		defer buf.Flush()
		out = game.NewSnapshotWriter(buf)
	}

	session, err := game.NewSession(ctx, cfg, engine.DefaultPose(), log, metrics)
	if err != nil {
		logging.LogError(log, "session rejected", err)
		return err
	}
	defer session.Close()
	ready.Store(true)

	script := game.Script{
		Ticks:     f.ticks,
		FireEvery: f.fireEvery,
		TurretAt:  f.turretAt,
		Poses:     game.Strafe(f.strafe, f.strafeEvery),
	}

	var summary game.Summary
	eg, egCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		defer close(done)
		var runErr error
		summary, runErr = script.Run(egCtx, session, out)
		return runErr
	})
	if serveCh != nil {
		// Monitor status server errors, a failed listener aborts the run
		eg.Go(func() error {
			select {
			case serveErr, ok := <-serveCh:
				if ok && serveErr != nil {
					return oops.In("cli").Code("status_server").Wrapf(serveErr, "status server failed")
				}
			case <-done:
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logging.LogError(log, "run aborted", err)
		return err
	}

	log.Info("run finished",
		"session", session.ID().String(),
		"ticks", summary.Ticks,
		"defeated", summary.Defeated,
	)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return oops.In("cli").Code("encode_failed").Wrapf(err, "encode summary")
	}
	return enc.Close()
}
