package storage

import "io"

// DocumentStorage stores opaque document blobs (insurance papers, contracts,
// licenses) referenced from entities by key. Keys are allocated by the
// storage backend; entities only ever hold the opaque key.
type DocumentStorage interface {
	// Save stores the blob and returns its allocated key. The original file
	// name is only used to preserve the extension.
	Save(fileName string, reader io.Reader) (key string, err error)

	// Open opens a stored blob for reading.
	Open(key string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(key string) error
}
