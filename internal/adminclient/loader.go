package adminclient

import (
	"context"
	"sync/atomic"
)

// LoadState is where a table currently stands. Every refresh walks
// Loading → Populated | Empty | Error and is re-entrant.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateError
)

// TableUpdate is one rendering instruction pushed to the table's sink.
type TableUpdate[Row any] struct {
	State   LoadState
	Rows    []Row
	Message string // empty-state or error text
}

// TableLoader fetches a collection and pushes row view-models to a sink.
// Each Load carries a sequence number; a response that is no longer the
// latest issued is discarded, so a slow earlier load can never overwrite a
// newer one.
type TableLoader[Row any] struct {
	fetch    func(ctx context.Context) ([]Row, error)
	sink     func(TableUpdate[Row])
	notifier Notifier
	failText string

	seq atomic.Uint64
}

func NewTableLoader[Row any](
	fetch func(ctx context.Context) ([]Row, error),
	sink func(TableUpdate[Row]),
	notifier Notifier,
	failText string,
) *TableLoader[Row] {
	return &TableLoader[Row]{fetch: fetch, sink: sink, notifier: notifier, failText: failText}
}

// Load refreshes the table. On transport failure the sink gets the error
// state and the notifier a transient error message.
func (l *TableLoader[Row]) Load(ctx context.Context) {
	seq := l.seq.Add(1)
	l.sink(TableUpdate[Row]{State: StateLoading})

	rows, err := l.fetch(ctx)
	if seq != l.seq.Load() {
		// a newer load was issued meanwhile
		return
	}

	if err != nil {
		l.sink(TableUpdate[Row]{State: StateError, Message: ErrorMessage(err, l.failText)})
		if l.notifier != nil {
			l.notifier.Notify(Notification{
				Severity: SeverityError,
				Title:    "Error",
				Message:  ErrorMessage(err, l.failText),
			})
		}
		return
	}

	if len(rows) == 0 {
		l.sink(TableUpdate[Row]{State: StateEmpty})
		return
	}
	l.sink(TableUpdate[Row]{State: StatePopulated, Rows: rows})
}
