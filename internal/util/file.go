package util

import "os"

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// FileExists reports whether path exists and is a directory or regular file
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
