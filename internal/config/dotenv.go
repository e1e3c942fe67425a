package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from a dotenv file into the process
// environment without overriding variables that are already set. An empty
// path means ".env". A missing file is not an error; the returned bool
// reports whether a file was read.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load env file %s: %w", path, err)
	}
	return true, nil
}
