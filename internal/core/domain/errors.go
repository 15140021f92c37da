package domain

import "go.trai.ch/zerr"

var (
	// ErrStoreReadFailed is returned when the positions file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read positions file")

	// ErrStoreCorrupt is returned when the positions file is not a JSON object of positions.
	ErrStoreCorrupt = zerr.New("positions file is corrupt")

	// ErrStoreMarshalFailed is returned when the positions cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal positions")

	// ErrStoreCreateFailed is returned when the directory of the positions file cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create positions directory")

	// ErrStoreWriteFailed is returned when the positions file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write positions file")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidSetting is returned when an environment override cannot be parsed.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrPathOutsideScope is returned when a file system path escapes its scope.
	ErrPathOutsideScope = zerr.New("path is outside the file system scope")

	// ErrAlreadyRegistered is returned when a tracker is registered twice.
	ErrAlreadyRegistered = zerr.New("tracker already registered")

	// ErrWatchFailed is returned when the document directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch document directory")

	// ErrDocumentNotFound is returned when a maintenance command finds no position for a document.
	ErrDocumentNotFound = zerr.New("no saved position for document")
)
