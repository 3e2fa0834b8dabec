package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Slot identifies which manuscript blob a key refers to.
type Slot string

const (
	SlotOriginal Slot = "original"
	SlotEdited   Slot = "edited"
)

// FileStore is the opaque blob store for manuscript content. Content is
// stored in full before any lifecycle transition references its key.
type FileStore interface {
	Save(slot Slot, filename string, r io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
}

// DiskStore keeps blobs on the local filesystem under
// root/articles/<slot>/.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	for _, slot := range []Slot{SlotOriginal, SlotEdited} {
		if err := os.MkdirAll(filepath.Join(root, "articles", string(slot)), 0o755); err != nil {
			return nil, err
		}
	}
	return &DiskStore{root: root}, nil
}

// Save writes the blob and returns its key. Keys are prefixed with a
// nanosecond timestamp so repeated uploads of the same filename never
// collide.
func (s *DiskStore) Save(slot Slot, filename string, r io.Reader) (string, error) {
	key := filepath.Join("articles", string(slot),
		fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(filename)))

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return key, nil
}

func (s *DiskStore) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, key))
}
