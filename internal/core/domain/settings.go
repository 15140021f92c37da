package domain

import "time"

const (
	// MaxRestoreDelay is the upper bound for the user-tunable restore delay.
	MaxRestoreDelay = 500 * time.Millisecond

	// DefaultRestoreDelay gives slow-initialising companion plugins time to settle.
	DefaultRestoreDelay = 50 * time.Millisecond

	// DefaultMaxPositions bounds the store when no setting is given.
	DefaultMaxPositions = 1000
)

// Settings is the user-facing configuration surface. Every field can change at runtime.
type Settings struct {
	// RestoreCursor restores the saved selection in editing mode.
	RestoreCursor bool
	// RespectLinks skips restoring when the user deliberately navigated to a heading or block.
	RespectLinks bool
	// MaxPositions bounds the number of stored positions. Zero means unlimited.
	MaxPositions uint
	// PersistToDisk enables reading and writing the positions file.
	PersistToDisk bool
	// RestoreDelay is waited after the view finished loading, before applying a position.
	RestoreDelay time.Duration
	// FilePath is the positions file, relative to the file system scope.
	FilePath string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		RestoreCursor: true,
		RespectLinks:  true,
		MaxPositions:  DefaultMaxPositions,
		PersistToDisk: true,
		RestoreDelay:  DefaultRestoreDelay,
		FilePath:      DefaultPositionsPath(),
	}
}

// Normalize clamps out-of-range values and fills an empty file path.
func (s Settings) Normalize() Settings {
	if s.RestoreDelay < 0 {
		s.RestoreDelay = 0
	}
	if s.RestoreDelay > MaxRestoreDelay {
		s.RestoreDelay = MaxRestoreDelay
	}
	if s.FilePath == "" {
		s.FilePath = DefaultPositionsPath()
	}
	return s
}

// Timings holds the fixed timing constants of the capture/restore protocol.
type Timings struct {
	// WriteDebounce is the quiescence window coalescing store writes.
	WriteDebounce time.Duration
	// CaptureDebounce is the trailing-edge window for scroll and edit captures.
	CaptureDebounce time.Duration
	// SafetyInterval is the period of the fallback capture.
	SafetyInterval time.Duration
	// SuppressionTTL bounds a restore's suppression before the position is applied.
	SuppressionTTL time.Duration
	// SettleDelay keeps captures suppressed after a position was applied.
	SettleDelay time.Duration
	// FrameInterval is one host animation frame.
	FrameInterval time.Duration
	// LoadAttempts bounds how many frames a restore waits for a view to load.
	LoadAttempts int
}

// DefaultTimings returns the reference timing values.
func DefaultTimings() Timings {
	return Timings{
		WriteDebounce:   2000 * time.Millisecond,
		CaptureDebounce: 100 * time.Millisecond,
		SafetyInterval:  5 * time.Second,
		SuppressionTTL:  1000 * time.Millisecond,
		SettleDelay:     500 * time.Millisecond,
		FrameInterval:   16 * time.Millisecond,
		LoadAttempts:    50,
	}
}
