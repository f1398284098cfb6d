package storage

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores uploaded assets on the local filesystem under a base
// directory and serves them under /uploads.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local file storage rooted at basePath. The image
// and video folders are created up front.
func NewLocalStorage(basePath string) *LocalStorage {
	for _, folder := range []string{FolderImages, FolderVideos} {
		if err := os.MkdirAll(filepath.Join(basePath, folder), 0755); err != nil {
			log.Printf("ERROR: [Storage] Failed to create upload directory '%s': %v", filepath.Join(basePath, folder), err)
		}
	}
	return &LocalStorage{basePath: basePath}
}

// Save writes the file under a freshly generated random name and returns its
// public path. Names are a uuid4 hex token plus the original extension, so
// concurrent uploads of identically named files never collide.
func (s *LocalStorage) Save(file io.Reader, filename, folder string) (string, error) {
	newFilename := randomName(filename)

	folderPath := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload folder '%s': %w", folderPath, err)
	}

	filePath := filepath.Join(folderPath, newFilename)
	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file '%s': %w", filePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath) // Do not leave partial files behind
		return "", fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}

	return "/uploads/" + folder + "/" + newFilename, nil
}

// randomName derives the stored filename: a uuid4 hex token plus whatever
// follows the last '.' of the original name. A name without a dot keeps the
// whole name as its extension. There is no content sniffing and no extension
// allow-list.
func randomName(filename string) string {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx+1:]
	}
	id := uuid.New()
	return hex.EncodeToString(id[:]) + "." + ext
}
