package playback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Coordinator supervises the per-stream workers of one session. Workers
// are independent: a failure terminates only its own stream and is logged
// here, never propagated to siblings. Each worker owns exactly one packet
// channel for its lifetime.
type Coordinator struct {
	log *slog.Logger
	wg  sync.WaitGroup
}

// NewCoordinator creates a worker supervisor. If log is nil,
// slog.Default() is used.
func NewCoordinator(log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{log: log.With("component", "coordinator")}
}

// StartVideo runs the video worker in its own goroutine.
func (c *Coordinator) StartVideo(ctx context.Context, worker *Video, packets <-chan VideoPacket) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := worker.Run(ctx, packets); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Error("video worker failed", "stream", worker.id, "error", err)
		}
	}()
}

// StartAudio runs the audio worker in its own goroutine.
func (c *Coordinator) StartAudio(ctx context.Context, worker *Audio, packets <-chan []byte) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := worker.Run(ctx, packets); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Error("audio worker failed", "stream", worker.id, "error", err)
		}
	}()
}

// Wait blocks until every started worker has exited. Callers close the
// packet channels (or cancel the context) first.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
