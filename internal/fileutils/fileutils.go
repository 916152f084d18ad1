// Package fileutils provides common file operations used throughout the
// application, including charset-aware reading of statement exports.
package fileutils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the entire contents of a file and returns it as a byte slice
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// ReadFileWithEncoding reads a file and decodes it from the named
// charset into UTF-8. Encoding names are the usual labels: "iso8859-1",
// "windows-1252", "utf-8", etc.
func ReadFileWithEncoding(filePath, encodingName string) ([]byte, error) {
	data, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding '%s': %w", encodingName, err)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file as %s: %w", encodingName, err)
	}

	log.WithFields(logrus.Fields{
		"file":     filePath,
		"encoding": encodingName,
	}).Debug("Read and decoded file")

	return decoded, nil
}
