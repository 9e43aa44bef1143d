// Package bundled carries the font files compiled into the TrayTick
// binary and exposes them as a fontres.BlobStore, so a fresh install
// has fonts to extract before the user ever adds their own.
package bundled

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/traytick/fontres/pkg/fontres"
)

//go:embed fonts/*.ttf
var fontFS embed.FS

// DefaultRef names the bundled font the controller falls back to when
// no selection has been persisted yet.
const DefaultRef = fontres.FileRef("TrayTickDisplay-Regular.ttf")

var blobs []fontres.Blob

func init() {
	entries, err := fs.ReadDir(fontFS, "fonts")
	if err != nil {
		panic(fmt.Sprintf("bundled fonts missing from binary: %v", err))
	}
	for _, entry := range entries {
		data, err := fontFS.ReadFile("fonts/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("reading bundled font %s: %v", entry.Name(), err))
		}
		blobs = append(blobs, fontres.Blob{Name: entry.Name(), Data: data})
	}
}

// Store enumerates the bundled fonts.
type Store struct{}

// Blobs returns the bundled font payloads in file name order.
func (Store) Blobs() []fontres.Blob {
	out := make([]fontres.Blob, len(blobs))
	copy(out, blobs)
	return out
}
