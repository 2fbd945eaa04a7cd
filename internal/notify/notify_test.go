package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) ChannelMessageSendEmbeds(channelID string, embeds []*discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embeds)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
}

func names(key string) string {
	return map[string]string{domain.ResourceFoodRations: "Food Rations"}[key]
}

func newTestNotifier(sender Sender) *Notifier {
	n := NewNotifier(sender, "chan-1", names)
	n.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return n
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Token: "t"}.Enabled())
	assert.True(t, Config{Token: "t", ChannelID: "c"}.Enabled())
}

func TestHandleStory_PostsEveryPage(t *testing.T) {
	sender := new(MockSender)
	n := newTestNotifier(sender)

	pages := make([]domain.StoryPage, 12)
	for i := range pages {
		pages[i] = domain.StoryPage{Title: "Awake", Text: "Smoke everywhere."}
	}

	sender.On("ChannelMessageSendEmbeds", "chan-1", mock.MatchedBy(func(e []*discordgo.MessageEmbed) bool {
		return len(e) == MaxEmbedsPerMessage
	})).Return(&discordgo.Message{}, nil).Once()
	sender.On("ChannelMessageSendEmbeds", "chan-1", mock.MatchedBy(func(e []*discordgo.MessageEmbed) bool {
		return len(e) == 2 && e[1].Footer.Text == FooterStory+" · page 12 of 12"
	})).Return(&discordgo.Message{}, nil).Once()

	evt := event.NewStoryTriggeredEvent("crash_awakening", pages)
	require.NoError(t, n.handleStory(context.Background(), evt))
	sender.AssertExpectations(t)
}

func TestHandleCompleted_FormatsRewards(t *testing.T) {
	sender := new(MockSender)
	n := newTestNotifier(sender)

	var sent []*discordgo.MessageEmbed
	sender.On("ChannelMessageSendEmbeds", "chan-1", mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]*discordgo.MessageEmbed) }).
		Return(&discordgo.Message{}, nil)

	action := &domain.Action{ID: domain.ActionForageFood, Name: "Forage for Food", Completions: 3}
	run := &domain.ActiveRun{ActionID: action.ID}
	grants := []domain.Grant{{
		Resource:   domain.ResourceFoodRations,
		Amount:     1250,
		Multiplier: 1.25,
		Labels:     []string{"Survival Manual ×1.25"},
	}}
	require.NoError(t, n.handleCompleted(context.Background(), event.NewActionCompletedEvent(action, run, grants)))

	require.Len(t, sent, 1)
	embed := sent[0]
	assert.Equal(t, "✅ Forage for Food", embed.Title)
	assert.Equal(t, "Completed 3 time(s).", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Food Rations", embed.Fields[0].Name)
	assert.Equal(t, "+1,250", embed.Fields[0].Value)
	assert.Equal(t, "Survival Manual ×1.25", embed.Fields[1].Value)
}

func TestHandler_ReturnsSendErrors(t *testing.T) {
	sender := new(MockSender)
	n := newTestNotifier(sender)
	sender.On("ChannelMessageSendEmbeds", "chan-1", mock.Anything).Return(nil, errors.New("rate limited"))

	bus := event.NewMemoryBus()
	n.Register(bus)

	evt := event.NewStoryTriggeredEvent("crash_awakening", []domain.StoryPage{{Title: "a", Text: "b"}})
	assert.Error(t, bus.Publish(context.Background(), evt))
}

func TestHandler_IgnoresBadPayload(t *testing.T) {
	sender := new(MockSender)
	n := newTestNotifier(sender)

	bad := event.Event{Type: event.StoryTriggered, Payload: "not a story"}
	assert.NoError(t, n.handleStory(context.Background(), bad))
	sender.AssertNotCalled(t, "ChannelMessageSendEmbeds", mock.Anything, mock.Anything)
}

type recordingPublisher struct {
	events chan event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt event.Event) error {
	p.events <- evt
	return nil
}

func TestForward_RelaysOnPool(t *testing.T) {
	bus := event.NewMemoryBus()
	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	pub := &recordingPublisher{events: make(chan event.Event, 4)}
	Forward(bus, pool, pub)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewStoryTriggeredEvent("crash_awakening", nil)))
	require.NoError(t, bus.Publish(ctx, event.NewLogMessageEvent(domain.LogEntry{Message: "ignored"})))

	select {
	case got := <-pub.events:
		assert.Equal(t, event.StoryTriggered, got.Type)
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded")
	}
	assert.Empty(t, pub.events)
}
