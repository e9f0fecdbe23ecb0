package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice"
	httpadapter "github.com/lattice-dev/lattice/internal/adapters/http"
	"github.com/lattice-dev/lattice/internal/adapters/memory"
	"github.com/lattice-dev/lattice/internal/adapters/redis"
	"github.com/lattice-dev/lattice/internal/logging"
	"github.com/lattice-dev/lattice/pkg/flow"
	"github.com/lattice-dev/lattice/pkg/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the debug state server over a locally wired client",
	Long: `Serve wires a Client with local adapters (in-memory or Redis storage,
HTTP contributor fetch), runs the bootstrap once, and exposes the resulting
session, sandbox and modal state plus Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		settingsFile, _ := cmd.Flags().GetString("settings")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		effects := flow.Effects{
			Settings:     settings.NewLoader(settings.WithFile(settingsFile)),
			Contributors: httpadapter.NewContributors(),
		}
		if redisAddr != "" {
			effects.Store = redis.New(redisAddr, "", 0)
		} else {
			effects.Store = memory.NewStore(nil)
		}

		registry := prometheus.NewRegistry()
		client := lattice.New(
			lattice.WithLogger(logger),
			lattice.WithEffects(effects),
			lattice.WithMetrics(registry),
		)

		if err := client.LoadApp(cmd.Context()); err != nil {
			return fmt.Errorf("bootstrap failed: %w", err)
		}

		logger.Info("debug server listening", "addr", addr)
		return http.ListenAndServe(addr, client.DebugHandler())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8192", "Listen address for the debug server")
	serveCmd.Flags().String("redis", "", "Redis address for persistent storage (in-memory when empty)")
	serveCmd.Flags().String("settings", "", "Path to the editor settings YAML file")
	rootCmd.AddCommand(serveCmd)
}
