package images

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps listing image attachments on local disk with a JSON index
// mapping listing id to the stored file names. The index is reloaded before
// and persisted after every mutation so several processes can share the same
// upload directory.
type FileStore struct {
	dir       string
	indexPath string
	mu        sync.Mutex
	index     map[string][]string
	logger    *zap.Logger
}

func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	fs := &FileStore{
		dir:       dir,
		indexPath: filepath.Join(dir, "index.json"),
		index:     make(map[string][]string),
		logger:    logger,
	}
	return fs, fs.load()
}

func (fs *FileStore) load() error {
	file, err := os.Open(fs.indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(&fs.index)
}

func (fs *FileStore) save() error {
	file, err := os.Create(fs.indexPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fs.index)
}

// Attach records an already-written image file for the listing.
func (fs *FileStore) Attach(listingID, fileName string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(); err != nil {
		return err
	}
	fs.index[listingID] = append(fs.index[listingID], fileName)
	return fs.save()
}

// Images returns the stored file names for the listing.
func (fs *FileStore) Images(listingID string) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(); err != nil {
		return nil, err
	}
	return append([]string(nil), fs.index[listingID]...), nil
}

// ReleaseImages deletes the listing's files and drops its index entry.
// Missing files are ignored.
func (fs *FileStore) ReleaseImages(_ context.Context, listingID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(); err != nil {
		return err
	}

	for _, name := range fs.index[listingID] {
		if err := os.Remove(filepath.Join(fs.dir, name)); err != nil && !os.IsNotExist(err) {
			fs.logger.Warn("remove image",
				zap.String("listing_id", listingID),
				zap.String("file", name),
				zap.Error(err))
		}
	}
	delete(fs.index, listingID)
	return fs.save()
}
