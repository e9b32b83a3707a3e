package event

import (
	"context"
	"sync"
	"time"

	"github.com/tovald/bossraid/internal/logger"
)

// ResilientPublisher wraps an Event Bus to add retry logic and dead-letter
// queuing. Callers get an immediate nil once the event is accepted; retries
// happen in the background so the boss-mutation path never blocks on a
// slow subscriber.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish attempts to publish an event. If the first attempt fails it
// launches a background retry loop and returns nil to the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn("Failed to publish event, initiating async retry",
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, firstErr error) {
	defer p.wg.Done()

	// Detached context: the originating request may already be cancelled.
	ctx := context.Background()
	log := logger.FromContext(ctx)
	lastErr := firstErr

	for i := 1; i <= p.maxRetries; i++ {
		select {
		case <-time.After(p.retryDelay * time.Duration(i)):
		case <-p.shutdown:
			p.writeDeadLetter(event, i, lastErr)
			return
		}

		if err := p.inner.Publish(ctx, event); err == nil {
			log.Info("Successfully published event after retry",
				"event_type", event.Type,
				"attempt", i)
			return
		} else {
			lastErr = err
			log.Warn("Retry failed",
				"event_type", event.Type,
				"attempt", i,
				"error", err)
		}
	}

	p.writeDeadLetter(event, p.maxRetries, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error("Failed to write dead letter entry",
			"event_type", event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown signals in-flight retry loops, waits for them to drain, and
// closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return p.deadLetter.Close()
}
