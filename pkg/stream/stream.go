// Package stream drives the long-poll update loop and delivers normalized
// updates to a handler or channel. Delivery preserves upstream order; a
// single malformed update is logged and skipped rather than stopping the
// stream.
package stream

import (
	"context"
	"errors"
	"log/slog"

	"telewire/pkg/client"
	"telewire/pkg/message"
)

const defaultPollTimeout = int64(30)
const defaultChannelBuffer = 16

// UpdateFetcher is the client surface the stream needs.
type UpdateFetcher interface {
	GetUpdates(ctx context.Context, request *client.GetUpdates) ([]client.UpdateResult, error)
}

// Handler processes one normalized update.
type Handler func(ctx context.Context, update message.Update) error

// Stream long-polls for updates on behalf of one bot.
type Stream struct {
	fetcher     UpdateFetcher
	log         *slog.Logger
	pollTimeout int64
	limit       *int64
}

// Option mutates Stream construction.
type Option func(*Stream)

// WithPollTimeout overrides the long-poll timeout in seconds.
func WithPollTimeout(seconds int64) Option {
	return func(s *Stream) {
		if seconds >= 0 {
			s.pollTimeout = seconds
		}
	}
}

// WithLimit bounds each update batch (1-100).
func WithLimit(limit int64) Option {
	return func(s *Stream) {
		s.limit = &limit
	}
}

// New constructs a stream over the given fetcher.
func New(fetcher UpdateFetcher, log *slog.Logger, options ...Option) (*Stream, error) {
	if fetcher == nil {
		return nil, errors.New("update fetcher is required")
	}
	if log == nil {
		log = slog.Default()
	}

	stream := &Stream{
		fetcher:     fetcher,
		log:         log.With("component", "stream"),
		pollTimeout: defaultPollTimeout,
	}
	for _, option := range options {
		option(stream)
	}

	return stream, nil
}

// Run polls until the context is cancelled, invoking the handler for every
// update that normalizes cleanly. The offset advances past every update in
// a batch, including skipped ones, so a malformed record is never refetched.
// A handler error stops the loop and is returned.
func (s *Stream) Run(ctx context.Context, handler Handler) error {
	if handler == nil {
		return errors.New("handler is required")
	}

	var offset *int64
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		request := client.NewGetUpdates().WithTimeout(s.pollTimeout)
		if offset != nil {
			request = request.WithOffset(*offset)
		}
		if s.limit != nil {
			request = request.WithLimit(*s.limit)
		}

		results, err := s.fetcher.GetUpdates(ctx, request)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for _, result := range results {
			next := result.UpdateID + 1
			offset = &next

			if result.Err != nil {
				s.log.Warn("Skipping malformed update",
					"update_id", result.UpdateID,
					"category", message.CategoryFromError(result.Err),
					"error", result.Err)
				continue
			}

			if err := handler(ctx, result.Update); err != nil {
				return err
			}
		}
	}
}

// Updates runs the loop in a goroutine and delivers updates on a channel.
// The channel closes when the context is cancelled or the loop fails; a
// slow consumer backpressures the poll rather than dropping updates.
func (s *Stream) Updates(ctx context.Context, buffer int) <-chan message.Update {
	if buffer <= 0 {
		buffer = defaultChannelBuffer
	}

	out := make(chan message.Update, buffer)
	go func() {
		defer close(out)

		err := s.Run(ctx, func(ctx context.Context, update message.Update) error {
			select {
			case <-ctx.Done():
				return nil
			case out <- update:
				return nil
			}
		})
		if err != nil {
			s.log.Error("Update stream stopped", "error", err)
		}
	}()

	return out
}
