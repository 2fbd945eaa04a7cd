package domain

import "time"

// StoryKey references an entry in the story table
type StoryKey string

// StoryPage is one page of a story popup
type StoryPage struct {
	Title string `json:"title" validate:"required"`
	Text  string `json:"text" validate:"required"`
}

// LogLevel classifies entries in the player-facing message log
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelSuccess LogLevel = "success"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// LogEntry is one line of the player-facing message log
type LogEntry struct {
	Level   LogLevel  `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
