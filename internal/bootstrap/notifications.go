package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/config"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/notify"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

// Notifications delivers story pages and completions to Discord off the
// game loop
type Notifications struct {
	Publisher *event.ResilientPublisher
	Pool      *worker.Pool
}

// InitializeNotifications wires game events to Discord when a token and
// channel are configured, and returns nil otherwise.
//
// Events are relayed from the game bus onto a worker pool, which hands them
// to a resilient publisher in front of a dedicated notify bus. The notifier
// subscribes there, so a failed send is retried with backoff and ends up in
// the dead-letter file if it keeps failing.
func InitializeNotifications(cfg *config.Config, bus event.Bus, cat *catalog.Catalog) (*Notifications, error) {
	if !cfg.DiscordEnabled() {
		slog.Info(notify.LogMsgNotifierDisabled)
		return nil, nil
	}

	session, err := notify.NewSession(notify.Config{Token: cfg.DiscordToken, ChannelID: cfg.DiscordChannelID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSession, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	notifyBus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(notifyBus, NotifyMaxRetries, NotifyRetryDelay, cfg.DeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreatePublisher, err)
	}

	notify.NewNotifier(session, cfg.DiscordChannelID, cat.ResourceName).Register(notifyBus)

	pool := worker.NewPool(NotifyWorkers, NotifyQueueSize)
	pool.Start()
	notify.Forward(bus, pool, publisher)

	slog.Info(LogMsgNotificationsEnabled,
		"channel", cfg.DiscordChannelID,
		"max_retries", NotifyMaxRetries,
		"retry_delay", NotifyRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return &Notifications{Publisher: publisher, Pool: pool}, nil
}

// Close drains queued sends and stops the publisher. Safe on nil.
func (n *Notifications) Close(ctx context.Context) {
	if n == nil {
		return
	}
	n.Pool.Stop()
	if err := n.Publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}
}
