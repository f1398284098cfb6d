package storage

import "io"

// Upload folders. Images and videos live in separate directories under the
// upload root and are served under /uploads/<folder>/.
const (
	FolderImages = "images"
	FolderVideos = "videos"
)

// FileStorage is the interface for storing uploaded assets. Implementing it
// allows swapping the local disk for an object store without touching the
// intake handlers.
type FileStorage interface {
	// Save stores the file content under the given folder and returns the
	// public path the asset is served at. The original filename is only used
	// to derive the stored file's extension.
	Save(file io.Reader, filename, folder string) (string, error)
}
