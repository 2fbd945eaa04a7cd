package ledger

// Epsilon absorbs floating point residue from proportional drains and
// fractional job production
const Epsilon = 1e-9

// Error message format strings
const (
	ErrMsgShortfallFmt       = "%w: need %g %s, have %g"
	ErrMsgUnknownResourceFmt = "%w: %s"
	ErrMsgReleaseFmt         = "%w: release %g %s, only %g reserved"
)
