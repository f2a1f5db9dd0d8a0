package ports

// FileSystem abstracts the file operations the editor persists state
// through, such as toolbox positions and exported images.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it and any missing
	// parent directories.
	WriteFile(path string, data []byte) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
