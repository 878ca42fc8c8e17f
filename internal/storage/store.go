package storage

import "io/fs"

// TopicStore is the writable home of user-saved topic documents.
type TopicStore interface {
	// Put writes a document under fileName, creating the store if needed.
	Put(fileName string, data []byte) error
	// FS exposes the store's contents for read-only scanning.
	FS() fs.FS
}
