package task

import (
	"context"
	"sync"
)

// Completion is the awaitable token returned by Start.
type Completion struct {
	done   chan struct{}
	once   sync.Once
	result *Result
	err    error
}

// Start runs the task in the background.
func (t *Task) Start(ctx context.Context) *Completion {
	c := &Completion{done: make(chan struct{})}
	go func() {
		res, err := t.Run(ctx)
		c.finish(res, err)
	}()
	return c
}

func (c *Completion) finish(res *Result, err error) {
	c.once.Do(func() {
		c.result, c.err = res, err
		close(c.done)
	})
}

// Done is closed when the run has finished.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Wait blocks until the run finishes or ctx ends. Abandoning the wait does
// not stop the run.
func (c *Completion) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-c.done:
		return c.result, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Err returns the run error once Done is closed, nil before.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
