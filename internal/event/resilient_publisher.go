package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CrashSite_Go/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher delivers events to a bus whose subscribers may fail
// transiently (remote notifiers). Failed events are retried with exponential
// backoff on a single worker; events that exhaust their retries, or that do
// not fit in the queue, are written to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// Publish satisfies Publisher. Delivery failures are retried in the
// background, so the caller always gets nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry attempts delivery once and queues a retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case p.retryQueue <- retryEntry{event: event, attempts: 1, lastErr: err}:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for entry.attempts <= p.maxRetries {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, entry.attempts)):
		case <-p.shutdown:
			// One last immediate attempt before giving up
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				p.writeDeadLetter(entry.event, entry.attempts+1, err)
			}
			return
		}

		err := p.bus.Publish(ctx, entry.event)
		entry.attempts++
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
			return
		}
		entry.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	p.writeDeadLetter(entry.event, entry.attempts, entry.lastErr)
}

// drain makes one final attempt for everything still queued
func (p *ResilientPublisher) drain() {
	ctx := context.Background()
	for {
		select {
		case entry := <-p.retryQueue:
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
				p.writeDeadLetter(entry.event, entry.attempts+1, err)
			}
		default:
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err)
		return
	}
	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered, "event_type", event.Type, "attempts", attempts)
}

// Shutdown stops the worker after a final delivery attempt for queued events
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if p.deadLetter != nil {
			return p.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
