package adminclient

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedUpdates struct {
	mu      sync.Mutex
	updates []TableUpdate[string]
}

func (c *capturedUpdates) sink(u TableUpdate[string]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, u)
}

func (c *capturedUpdates) last() TableUpdate[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updates[len(c.updates)-1]
}

func TestLoaderPopulated(t *testing.T) {
	captured := &capturedUpdates{}
	loader := NewTableLoader(
		func(ctx context.Context) ([]string, error) { return []string{"a", "b"}, nil },
		captured.sink, nil, "load failed")

	loader.Load(context.Background())

	require.Len(t, captured.updates, 2)
	assert.Equal(t, StateLoading, captured.updates[0].State)
	assert.Equal(t, StatePopulated, captured.updates[1].State)
	assert.Equal(t, []string{"a", "b"}, captured.updates[1].Rows)
}

func TestLoaderEmptyCollection(t *testing.T) {
	captured := &capturedUpdates{}
	loader := NewTableLoader(
		func(ctx context.Context) ([]string, error) { return nil, nil },
		captured.sink, nil, "load failed")

	loader.Load(context.Background())

	last := captured.last()
	assert.Equal(t, StateEmpty, last.State)
	assert.Empty(t, last.Rows)
}

func TestLoaderErrorNotifies(t *testing.T) {
	captured := &capturedUpdates{}
	notifier := NewSlotNotifier()
	loader := NewTableLoader(
		func(ctx context.Context) ([]string, error) { return nil, errors.New("connection refused") },
		captured.sink, notifier, "Failed to load orders.")

	loader.Load(context.Background())

	last := captured.last()
	assert.Equal(t, StateError, last.State)
	assert.Equal(t, "Failed to load orders.", last.Message)

	n, ok := notifier.Current()
	require.True(t, ok)
	assert.Equal(t, SeverityError, n.Severity)
	assert.Equal(t, "Failed to load orders.", n.Message)
}

func TestLoaderDiscardsStaleResponse(t *testing.T) {
	captured := &capturedUpdates{}

	firstStarted := make(chan struct{})
	firstMayFinish := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	var loader *TableLoader[string]
	loader = NewTableLoader(
		func(ctx context.Context) ([]string, error) {
			mu.Lock()
			calls++
			call := calls
			mu.Unlock()
			if call == 1 {
				close(firstStarted)
				<-firstMayFinish
				return []string{"stale"}, nil
			}
			return []string{"fresh"}, nil
		},
		captured.sink, nil, "load failed")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		loader.Load(context.Background()) // slow first load
	}()

	<-firstStarted
	loader.Load(context.Background()) // second load wins
	close(firstMayFinish)
	wg.Wait()

	// the stale first response must not overwrite the fresh render
	last := captured.last()
	assert.Equal(t, StatePopulated, last.State)
	assert.Equal(t, []string{"fresh"}, last.Rows)
}
