package ports

// FileSystem is a byte-oriented file API scoped to a root directory.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadFile reads the whole file at name.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the file at name with data.
	WriteFile(name string, data []byte) error

	// Exists reports whether name exists.
	Exists(name string) (bool, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}
