package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"telewire/pkg/config"
	"telewire/pkg/logger"
	"telewire/pkg/ui/watch"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Inspect incoming updates live",
	Long:  "Long-polls for updates and renders each one's normalized kind, chat, sender, and forward provenance in a terminal feed.",
	Run: func(cmd *cobra.Command, args []string) {
		_ = args

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
			return
		}

		// The TUI owns the terminal; keep logs structured on stderr as JSON.
		cfg.Logging.Format = "json"
		appLogger, err := logger.New(cfg.Logging)
		if err != nil {
			fmt.Printf("failed to initialize logger: %v\n", err)
			return
		}
		slog.SetDefault(appLogger)
		log := slog.Default().With("component", "cmd.watch")

		api, updates, err := buildStream(cfg, appLogger)
		if err != nil {
			log.Error("Failed to initialize client", "error", err)
			return
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		info := watch.RuntimeInfo{}
		if me, err := api.GetMe(runCtx); err == nil && me.Username != nil {
			info.BotUsername = *me.Username
		}

		feed := updates.Updates(runCtx, 0)
		if err := watch.Run(runCtx, feed, info); err != nil {
			log.Error("Watch UI failed", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
