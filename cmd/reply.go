package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"telewire/pkg/client"
	"telewire/pkg/config"
	"telewire/pkg/logger"
	"telewire/pkg/message"
	"telewire/pkg/stream"

	"github.com/spf13/cobra"
)

// replyCmd represents the reply command
var replyCmd = &cobra.Command{
	Use:   "reply",
	Short: "Run an echo bot",
	Long:  "Long-polls for updates and answers every text message with an echo reply.",
	Run: func(cmd *cobra.Command, args []string) {
		_ = args

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
			return
		}

		appLogger, err := logger.New(cfg.Logging)
		if err != nil {
			fmt.Printf("failed to initialize logger: %v\n", err)
			return
		}
		slog.SetDefault(appLogger)
		log := slog.Default().With("component", "cmd.reply")

		api, updates, err := buildStream(cfg, appLogger)
		if err != nil {
			log.Error("Failed to initialize client", "error", err)
			return
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bot := &replyBot{
			api:       api,
			allowFrom: allowFromSet(cfg.Telegram.AllowFrom),
			log:       log,
		}

		log.Info("Reply bot started")
		if err := updates.Run(runCtx, bot.handle); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("Update stream failed", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replyCmd)
}

// buildStream wires the API client and the long-poll stream from config.
func buildStream(cfg *config.Config, log *slog.Logger) (*client.Client, *stream.Stream, error) {
	var clientOptions []client.Option
	if cfg.Telegram.BaseURL != "" {
		clientOptions = append(clientOptions, client.WithBaseURL(cfg.Telegram.BaseURL))
	}

	api, err := client.New(cfg.Telegram.Token, log, clientOptions...)
	if err != nil {
		return nil, nil, err
	}

	var streamOptions []stream.Option
	if cfg.Telegram.PollTimeoutSeconds > 0 {
		streamOptions = append(streamOptions, stream.WithPollTimeout(cfg.Telegram.PollTimeoutSeconds))
	}
	if cfg.Telegram.PollLimit > 0 {
		streamOptions = append(streamOptions, stream.WithLimit(cfg.Telegram.PollLimit))
	}

	updates, err := stream.New(api, log, streamOptions...)
	if err != nil {
		return nil, nil, err
	}

	return api, updates, nil
}

type replyBot struct {
	api       *client.Client
	allowFrom map[string]struct{}
	log       *slog.Logger
}

// handle answers one normalized update. Non-text kinds are ignored; send
// failures are logged but do not stop the stream.
func (b *replyBot) handle(ctx context.Context, update message.Update) error {
	incoming, ok := update.Kind.(message.UpdateMessage)
	if !ok {
		return nil
	}

	msg := incoming.Data
	text, ok := msg.Kind.(message.Text)
	if !ok {
		return nil
	}

	if msg.From != nil && !b.senderAllowed(strconv.FormatInt(int64(msg.From.ID), 10)) {
		b.log.Debug("Ignoring message from unauthorized sender", "sender_id", int64(msg.From.ID))
		return nil
	}

	reply := replyText(text.Data)
	b.log.Info("Replying", "chat_id", int64(msg.Chat.ID()), "message_id", int64(msg.ID))

	if _, err := b.api.SendMessage(ctx, client.ReplyTo(msg, reply)); err != nil {
		b.log.Error("Failed to send reply", "error", err)
	}

	return nil
}

// senderAllowed checks whether a sender is permitted by allow_from config.
//
// When no allow list is configured, all senders are accepted.
func (b *replyBot) senderAllowed(senderID string) bool {
	if len(b.allowFrom) == 0 {
		return true
	}

	_, ok := b.allowFrom[strings.TrimSpace(senderID)]
	return ok
}

func replyText(text string) string {
	return fmt.Sprintf("Got the message: '%s'", text)
}

// allowFromSet normalizes allow_from values into a lookup set.
func allowFromSet(allowFrom []string) map[string]struct{} {
	if len(allowFrom) == 0 {
		return nil
	}

	allowed := make(map[string]struct{}, len(allowFrom))
	for _, value := range allowFrom {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		allowed[trimmed] = struct{}{}
	}

	if len(allowed) == 0 {
		return nil
	}

	return allowed
}
