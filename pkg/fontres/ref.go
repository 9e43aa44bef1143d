// Package fontres resolves, registers, and tracks the font files the
// TrayTick tray timer renders with. Font files live under a single
// managed fonts directory; selections are persisted as paths relative
// to it so the install tree can move without breaking configuration.
package fontres

import (
	"path"
	"path/filepath"
	"strings"
)

// ConfigKeyFontFile is the configuration key the committed font
// selection is persisted under.
const ConfigKeyFontFile = "font.file"

// fontsToken stands in for the managed fonts directory in persisted
// values, so configs survive the directory moving between machines.
const fontsToken = "$FONTS"

// FileRef names a font file by its path relative to the managed fonts
// directory, e.g. "TrayTickDisplay-Regular.ttf" or "mono/Extra.ttf".
// It is a claim about where the file should be, not a checked path.
type FileRef string

// ResolvedPath is an absolute path to a font file that existed at
// resolution time.
type ResolvedPath string

// Base returns the last path segment of the ref. Both slash styles are
// accepted since persisted refs may have been written on Windows.
func (r FileRef) Base() string {
	return path.Base(strings.ReplaceAll(string(r), `\`, "/"))
}

// Stem returns the base name without its extension, the display name of
// last resort when a font file cannot be parsed.
func (r FileRef) Stem() string {
	base := r.Base()
	return strings.TrimSuffix(base, path.Ext(base))
}

// native returns the ref as a relative path in the host separator
// style, suitable for joining onto the fonts directory.
func (r FileRef) native() string {
	return filepath.FromSlash(strings.ReplaceAll(string(r), `\`, "/"))
}

// ConfigValue renders the ref as its persisted configuration value,
// with the fonts directory abbreviated to the $FONTS token.
func (r FileRef) ConfigValue() string {
	return fontsToken + "/" + filepath.ToSlash(r.native())
}

// ParseRef parses a persisted configuration value back into a ref.
// Values written by older Windows builds use backslashes; both styles
// are accepted. An empty or token-only value parses to the empty ref,
// which callers treat as no selection.
func ParseRef(value string) FileRef {
	v := strings.TrimSpace(value)
	v = strings.TrimPrefix(v, fontsToken)
	v = strings.ReplaceAll(v, `\`, "/")
	v = strings.TrimLeft(v, "/")
	return FileRef(v)
}
