package fontres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Blob is one font payload carried inside the TrayTick binary.
type Blob struct {
	Name string
	Data []byte
}

// BlobStore enumerates the font payloads compiled into the binary.
type BlobStore interface {
	Blobs() []Blob
}

// Extractor writes bundled font payloads out to the fonts directory so
// first runs start with something to render and to list.
type Extractor struct {
	store BlobStore
	log   *logrus.Logger
}

// NewExtractor creates an extractor over the given store. A nil log
// falls back to the logrus standard logger.
func NewExtractor(store BlobStore, log *logrus.Logger) *Extractor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Extractor{store: store, log: log}
}

// ExtractAll writes every bundled font into root, creating the
// directory if needed. Files already present are overwritten. A failed
// file is logged and skipped so one bad write cannot block the rest;
// the failures come back joined into one error.
func (e *Extractor) ExtractAll(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating fonts directory: %w", err)
	}

	var errs []error
	for _, blob := range e.store.Blobs() {
		dest := filepath.Join(root, blob.Name)
		if err := os.WriteFile(dest, blob.Data, 0o644); err != nil {
			e.log.WithField("file", blob.Name).WithError(err).Error("failed to extract bundled font")
			errs = append(errs, fmt.Errorf("writing %s: %w", blob.Name, err))
			continue
		}
		e.log.WithField("file", blob.Name).Debug("bundled font extracted")
	}
	return errors.Join(errs...)
}
