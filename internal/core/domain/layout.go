package domain

import "path/filepath"

const (
	// StayDirName is the name of the internal data directory.
	StayDirName = ".stay"

	// PositionsFileName is the name of the persisted positions file.
	PositionsFileName = "positions.json"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = "stay.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPositionsPath returns the default location of the positions file.
// It joins .stay and positions.json.
func DefaultPositionsPath() string {
	return filepath.Join(StayDirName, PositionsFileName)
}
