package game

// Log messages
const (
	LogMsgPublishFailed = "Failed to publish game events"
)
