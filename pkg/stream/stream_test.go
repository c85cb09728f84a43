package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"telewire/pkg/client"
	"telewire/pkg/message"
	"telewire/pkg/wire"

	"github.com/stretchr/testify/require"
)

var errScriptDone = errors.New("script done")

// scriptedFetcher replays pre-built batches and records every request.
type scriptedFetcher struct {
	batches  [][]client.UpdateResult
	requests []*client.GetUpdates
	calls    int
}

func (f *scriptedFetcher) GetUpdates(_ context.Context, request *client.GetUpdates) ([]client.UpdateResult, error) {
	f.requests = append(f.requests, request)
	if f.calls >= len(f.batches) {
		return nil, errScriptDone
	}

	batch := f.batches[f.calls]
	f.calls++
	return batch, nil
}

// blockingFetcher waits for cancellation before failing.
type blockingFetcher struct{}

func (f *blockingFetcher) GetUpdates(ctx context.Context, _ *client.GetUpdates) ([]client.UpdateResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func textUpdate(id int64) client.UpdateResult {
	text := "hi"
	raw := wire.RawMessage{
		MessageID: wire.MessageID(id * 10),
		Date:      1000,
		Chat:      wire.RawChat{ID: 7, Type: wire.ChatTypePrivate},
		Text:      &text,
	}

	update, err := message.DecodeUpdate(wire.RawUpdate{UpdateID: id, Message: &raw})
	if err != nil {
		panic(err)
	}

	return client.UpdateResult{UpdateID: id, Update: update}
}

func malformedUpdate(id int64) client.UpdateResult {
	return client.UpdateResult{
		UpdateID: id,
		Err:      &message.DecodeError{Category: message.ErrorInvalidForward},
	}
}

func TestNewRequiresFetcher(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}

func TestRunDeliversInOrderAndAdvancesOffset(t *testing.T) {
	fetcher := &scriptedFetcher{
		batches: [][]client.UpdateResult{
			{textUpdate(5), malformedUpdate(6)},
			{textUpdate(7)},
		},
	}

	updates, err := New(fetcher, nil, WithPollTimeout(0), WithLimit(50))
	require.NoError(t, err)

	var delivered []int64
	err = updates.Run(context.Background(), func(_ context.Context, update message.Update) error {
		delivered = append(delivered, update.ID)
		return nil
	})
	require.ErrorIs(t, err, errScriptDone)

	// The malformed update is skipped, not delivered.
	require.Equal(t, []int64{5, 7}, delivered)

	require.Len(t, fetcher.requests, 3)
	require.Nil(t, fetcher.requests[0].Offset)
	// The offset moves past every update in a batch, including the skipped
	// one, so a malformed record is never refetched.
	require.NotNil(t, fetcher.requests[1].Offset)
	require.Equal(t, int64(7), *fetcher.requests[1].Offset)
	require.NotNil(t, fetcher.requests[2].Offset)
	require.Equal(t, int64(8), *fetcher.requests[2].Offset)

	require.NotNil(t, fetcher.requests[0].Limit)
	require.Equal(t, int64(50), *fetcher.requests[0].Limit)
}

func TestRunHandlerErrorStopsLoop(t *testing.T) {
	fetcher := &scriptedFetcher{
		batches: [][]client.UpdateResult{{textUpdate(1), textUpdate(2)}},
	}

	updates, err := New(fetcher, nil)
	require.NoError(t, err)

	handlerErr := errors.New("handler failed")
	var delivered int
	err = updates.Run(context.Background(), func(context.Context, message.Update) error {
		delivered++
		return handlerErr
	})
	require.ErrorIs(t, err, handlerErr)
	require.Equal(t, 1, delivered)
}

func TestRunRequiresHandler(t *testing.T) {
	updates, err := New(&scriptedFetcher{}, nil)
	require.NoError(t, err)

	require.Error(t, updates.Run(context.Background(), nil))
}

func TestRunStopsOnContextCancel(t *testing.T) {
	updates, err := New(&blockingFetcher{}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err = updates.Run(ctx, func(context.Context, message.Update) error {
		t.Error("no update should be delivered")
		return nil
	})
	require.NoError(t, err)
}

func TestUpdatesChannelClosesWhenLoopStops(t *testing.T) {
	fetcher := &scriptedFetcher{
		batches: [][]client.UpdateResult{{textUpdate(1)}},
	}

	updates, err := New(fetcher, nil)
	require.NoError(t, err)

	feed := updates.Updates(context.Background(), 1)

	var received []int64
	deadline := time.After(2 * time.Second)
	for {
		select {
		case update, ok := <-feed:
			if !ok {
				require.Equal(t, []int64{1}, received)
				return
			}
			received = append(received, update.ID)
		case <-deadline:
			t.Fatal("update channel did not close")
		}
	}
}
