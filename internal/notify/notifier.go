package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// Sender is the slice of *discordgo.Session the notifier uses
type Sender interface {
	ChannelMessageSendEmbeds(channelID string, embeds []*discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ResourceNamer maps a resource key to its display name
type ResourceNamer func(key string) string

// Config holds the notifier configuration
type Config struct {
	Token     string
	ChannelID string
}

// Enabled reports whether both token and channel are set
func (c Config) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// NewSession creates a REST-only Discord session. Posting to a channel does
// not need the gateway, so the session is never opened.
func NewSession(cfg Config) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	return s, nil
}

// Notifier posts story pages and action completions to a Discord channel
type Notifier struct {
	sender    Sender
	channelID string
	names     ResourceNamer
	printer   *message.Printer
	now       func() time.Time
}

// NewNotifier creates a notifier. A nil names func shows raw resource keys.
func NewNotifier(sender Sender, channelID string, names ResourceNamer) *Notifier {
	if names == nil {
		names = func(key string) string { return key }
	}
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		names:     names,
		printer:   message.NewPrinter(language.English),
		now:       time.Now,
	}
}

// Register subscribes the notifier to bus. Handler errors are returned so a
// ResilientPublisher in front of bus can retry them.
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.StoryTriggered, n.handleStory)
	bus.Subscribe(event.ActionCompleted, n.handleCompleted)
	logger.FromContext(context.Background()).Info(LogMsgNotifierRegistered, "channel_id", n.channelID)
}

func (n *Notifier) handleStory(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StoryTriggeredPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(payload.Pages))
	for i, page := range payload.Pages {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       page.Title,
			Description: page.Text,
			Color:       ColorStory,
			Footer: &discordgo.MessageEmbedFooter{
				Text: n.printer.Sprintf("%s · page %d of %d", FooterStory, i+1, len(payload.Pages)),
			},
		})
	}

	for start := 0; start < len(embeds); start += MaxEmbedsPerMessage {
		end := min(start+MaxEmbedsPerMessage, len(embeds))
		if err := n.send(ctx, evt.Type, embeds[start:end]); err != nil {
			return err
		}
	}
	logger.FromContext(ctx).Info(LogMsgNotificationSent, "event_type", evt.Type, "story", payload.Key, "pages", len(embeds))
	return nil
}

func (n *Notifier) handleCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ActionCompletedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✅ " + payload.Name,
		Description: n.printer.Sprintf("Completed %d time(s).", payload.Completions),
		Color:       ColorCompletion,
		Timestamp:   n.now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterCompletion},
	}

	var bonuses []string
	for _, g := range payload.Rewards {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   n.names(g.Resource),
			Value:  n.printer.Sprintf("+%d", int64(g.Amount)),
			Inline: true,
		})
		bonuses = append(bonuses, g.Labels...)
	}
	if len(bonuses) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  FieldMultiplier,
			Value: strings.Join(dedupe(bonuses), "\n"),
		})
	}

	if err := n.send(ctx, evt.Type, []*discordgo.MessageEmbed{embed}); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgNotificationSent, "event_type", evt.Type, "action", payload.ActionID)
	return nil
}

func (n *Notifier) send(ctx context.Context, t event.Type, embeds []*discordgo.MessageEmbed) error {
	if _, err := n.sender.ChannelMessageSendEmbeds(n.channelID, embeds); err != nil {
		logger.FromContext(ctx).Error(LogMsgNotificationError, "event_type", t, "error", err)
		return err
	}
	return nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
