// Package filestorage stores uploaded resume files on the local filesystem.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/campusworks/placementcell/internal/pkg/apperrors"
	"github.com/campusworks/placementcell/internal/pkg/logger"
)

// allowedExtensions is the extension allow-list for resume uploads.
var allowedExtensions = map[string]struct{}{
	".pdf": {},
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedExtension reports whether the filename carries an allowed resume
// extension. The match is case-insensitive.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeFilename strips any path components from the name and collapses
// characters outside [A-Za-z0-9._-]. An empty result is reported as invalid.
func SanitizeFilename(filename string) (string, error) {
	// Drop directory components, both separators
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" || base == "_" {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}
	return base, nil
}

// ResumeStore defines the interface for resume file operations
type ResumeStore interface {
	// Save validates and writes an uploaded resume, returning the stored filename
	Save(fileHeader *multipart.FileHeader, username string) (string, error)

	// Delete removes a stored resume; a missing file is not an error
	Delete(storedName string) error

	// FullPath returns the full filesystem path for a stored filename
	FullPath(storedName string) (string, error)
}

// LocalStorage stores resume files under a single base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath,
// creating the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save validates the upload against the extension allow-list, sanitizes the
// client filename and writes the file as "<username>_<sanitized name>".
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, username string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	if !AllowedExtension(fileHeader.Filename) {
		return "", apperrors.ErrResumeTypeNotAllowed
	}

	base, err := SanitizeFilename(fileHeader.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrResumeTypeNotAllowed, err)
	}

	ownerPrefix := unsafeChars.ReplaceAllString(username, "_")
	storedName := ownerPrefix + "_" + base

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, storedName)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("Resume saved")
	return storedName, nil
}

// Delete removes a stored resume file. Deleting a file that does not exist
// is treated as success.
func (ls *LocalStorage) Delete(storedName string) error {
	if storedName == "" {
		return nil // nothing to delete
	}

	filename := filepath.Base(storedName)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", storedName)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Resume to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete resume")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath resolves a stored filename to its filesystem path, rejecting any
// name that escapes the storage directory.
func (ls *LocalStorage) FullPath(storedName string) (string, error) {
	filename := filepath.Base(strings.ReplaceAll(storedName, "\\", "/"))
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return "", fmt.Errorf("invalid file path: %s", storedName)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrResumeNotFound
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	return physicalPath, nil
}
