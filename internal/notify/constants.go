package notify

// Discord limits
const (
	// MaxEmbedsPerMessage is Discord's cap on embeds in one message
	MaxEmbedsPerMessage = 10
)

// Embed colors
const (
	ColorStory      = 0x5865F2 // Discord Blurple
	ColorCompletion = 0x57F287 // Green
)

// Embed text
const (
	FooterStory      = "Crash Site"
	FooterCompletion = "Action Log"
	FieldMultiplier  = "Bonuses"
)

const (
	ErrMsgCreateSession = "error creating Discord session"
)

// Log messages
const (
	LogMsgNotifierRegistered   = "Discord notifier registered"
	LogMsgNotificationSent     = "Discord notification sent"
	LogMsgNotificationError    = "Failed to send Discord notification"
	LogMsgPayloadDecodeError   = "Failed to decode notification payload"
	LogMsgForwardDropped       = "Notification dropped, worker queue full"
	LogMsgNotifierDisabled     = "Discord notifier disabled, token or channel not configured"
	LogMsgNotificationForwards = "Forwarding game events to notifier"
)
