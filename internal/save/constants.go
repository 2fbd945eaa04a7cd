package save

import "os"

// File store settings
const (
	SaveFilePermissions os.FileMode = 0o644
	SaveDirPermissions  os.FileMode = 0o755
	tempFilePattern                 = ".save-*.tmp"
)

// Error messages
const (
	ErrMsgReadSaveFailed   = "failed to read save"
	ErrMsgWriteSaveFailed  = "failed to write save"
	ErrMsgDecodeSaveFailed = "failed to decode save"
	ErrMsgEncodeSaveFailed = "failed to encode save"
	ErrMsgQuerySaveFailed  = "failed to query save"
	ErrMsgUpsertSaveFailed = "failed to store save"
	ErrMsgInvalidSlot      = "save slot must not be empty"
)

// Log messages
const (
	LogMsgNoSavedState = "No saved state found, starting a new game"
	LogMsgLoadFailed   = "Failed to load saved state, starting a new game"
	LogMsgGameLoaded   = "Saved game loaded"
	LogMsgGameSaved    = "Game saved"
	LogMsgSaveFailed   = "Failed to save game"
)
