package fontres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/traytick/fontres/pkg/sfnt"
)

// ErrNotPreviewing is reported by Apply and Cancel when no preview is
// in progress.
var ErrNotPreviewing = errors.New("fontres: no preview in progress")

// ConfigStore is the slice of TrayTick's settings the controller needs:
// one string key holding the committed font selection.
type ConfigStore interface {
	// Read returns the value for key, or "" when unset.
	Read(key string) string

	// Write persists value under key.
	Write(key, value string) error
}

// Selection pairs a font file ref with the display name shown in the
// settings UI.
type Selection struct {
	Ref  FileRef
	Name string
}

// Controller owns the font selection lifecycle: loading the persisted
// choice at startup, previewing candidates while the settings dialog is
// open, and committing or rolling back. At most one preview is in
// flight, and the committed selection is always the one the config
// file holds.
//
// Not safe for concurrent use. TrayTick drives it from the UI event
// loop only.
type Controller struct {
	store      ConfigStore
	loc        *Locator
	res        *ResourceManager
	log        *logrus.Logger
	defaultRef FileRef

	committed Selection
	preview   *Selection
}

// NewController wires the selection lifecycle over its collaborators.
// defaultRef names the bundled font used when the config holds no
// selection. A nil log falls back to the logrus standard logger.
func NewController(store ConfigStore, loc *Locator, res *ResourceManager, defaultRef FileRef, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{store: store, loc: loc, res: res, defaultRef: defaultRef, log: log}
}

// Init loads the persisted selection, falling back to the bundled
// default when nothing is persisted, registers its font, and returns
// the selection the UI should display. A selection whose file is gone
// or will not register degrades to an unregistered selection named
// after the file, never an error: the timer comes up with whatever
// rendering it can get.
func (c *Controller) Init() Selection {
	ref := ParseRef(c.store.Read(ConfigKeyFontFile))
	if ref == "" {
		ref = c.defaultRef
	}

	c.preview = nil
	fixed, path, err := c.resolveAndLoad(ref, true)
	if err != nil {
		c.log.WithField("ref", string(ref)).WithError(err).Warn("configured font unavailable, falling back to default rendering")
		// fixed reflects any repair already written to the config; the
		// committed ref must keep matching it.
		c.committed = Selection{Ref: fixed, Name: fixed.Stem()}
		return c.committed
	}
	c.committed = Selection{Ref: fixed, Name: c.displayName(path, fixed)}
	return c.committed
}

// Preview registers ref's font without persisting anything, so the
// settings dialog can render a live sample. On failure the previous
// state stands: the active font is re-registered best-effort and the
// error reported alongside the still-active selection.
func (c *Controller) Preview(ref FileRef) (Selection, error) {
	path, err := c.loc.Resolve(ref)
	if err != nil {
		return c.Active(), fmt.Errorf("previewing %q: %w", string(ref), err)
	}
	if err := c.res.Load(path); err != nil {
		// The failed load cleared the slot; put the active font back.
		c.restoreActive()
		return c.Active(), fmt.Errorf("previewing %q: %w", string(ref), err)
	}
	sel := Selection{Ref: ref, Name: c.displayName(path, ref)}
	c.preview = &sel
	return sel, nil
}

// Cancel abandons the preview and re-registers the committed font. The
// preview is gone even when restoration fails; that failure is logged
// rather than returned, since the caller can do nothing more about it.
func (c *Controller) Cancel() error {
	if c.preview == nil {
		return ErrNotPreviewing
	}
	c.preview = nil

	ref := c.committed.Ref
	fixed, path, err := c.resolveAndLoad(ref, true)
	if err != nil {
		// Re-resolution may have repaired the persisted ref before the
		// load failed; keep the committed ref in step with it.
		c.committed.Ref = fixed
		c.log.WithField("ref", string(ref)).WithError(err).Warn("cancelled preview but could not restore the committed font")
		return nil
	}
	c.committed = Selection{Ref: fixed, Name: c.displayName(path, fixed)}
	return nil
}

// Apply persists the previewed selection and makes it the committed
// one. When the config write fails the preview stays in place and the
// error is returned; nothing becomes committed that was not persisted.
func (c *Controller) Apply() error {
	if c.preview == nil {
		return ErrNotPreviewing
	}
	if err := c.store.Write(ConfigKeyFontFile, c.preview.Ref.ConfigValue()); err != nil {
		return fmt.Errorf("persisting font selection: %w", err)
	}
	c.committed = *c.preview
	c.preview = nil
	c.log.WithFields(logrus.Fields{
		"ref":  string(c.committed.Ref),
		"name": c.committed.Name,
	}).Info("font selection applied")
	return nil
}

// Switch previews ref and immediately applies it, the path taken when
// the user picks a font straight from the menu. A failed apply rolls
// the preview back so the prior selection stands.
func (c *Controller) Switch(ref FileRef) (Selection, error) {
	sel, err := c.Preview(ref)
	if err != nil {
		return sel, err
	}
	if err := c.Apply(); err != nil {
		_ = c.Cancel()
		return c.Committed(), err
	}
	return sel, nil
}

// Committed returns the persisted selection.
func (c *Controller) Committed() Selection {
	return c.committed
}

// Previewing returns the in-flight preview, if any.
func (c *Controller) Previewing() (Selection, bool) {
	if c.preview == nil {
		return Selection{}, false
	}
	return *c.preview, true
}

// Active returns the selection currently rendering: the preview when
// one is in flight, the committed selection otherwise.
func (c *Controller) Active() Selection {
	if c.preview != nil {
		return *c.preview
	}
	return c.committed
}

// resolveAndLoad locates ref and registers its file, optionally
// repairing the persisted ref when the file has moved. The returned ref
// reflects any repair.
func (c *Controller) resolveAndLoad(ref FileRef, repair bool) (FileRef, ResolvedPath, error) {
	path, err := c.loc.Resolve(ref)
	if err != nil {
		return ref, "", err
	}
	if repair {
		ref = c.repairRef(ref, path)
	}
	if err := c.res.Load(path); err != nil {
		return ref, "", err
	}
	return ref, path, nil
}

// repairRef rewrites the persisted selection when resolution found the
// file somewhere other than the ref's nominal location, typically after
// fonts were reorganized into subdirectories.
func (c *Controller) repairRef(ref FileRef, path ResolvedPath) FileRef {
	rel, err := filepath.Rel(c.loc.Root(), string(path))
	if err != nil || rel == ref.native() {
		return ref
	}
	fixed := FileRef(filepath.ToSlash(rel))
	if err := c.store.Write(ConfigKeyFontFile, fixed.ConfigValue()); err != nil {
		c.log.WithError(err).Warn("failed to persist repaired font path")
	} else {
		c.log.WithFields(logrus.Fields{
			"from": string(ref),
			"to":   string(fixed),
		}).Info("repaired font path in configuration")
	}
	return fixed
}

// displayName extracts the family name from the font at path, falling
// back to the ref's file name stem when the file will not parse. A font
// that renders but will not parse keeps working under its file name.
func (c *Controller) displayName(path ResolvedPath, ref FileRef) string {
	name, err := familyNameOf(path)
	if err != nil {
		c.log.WithField("file", string(path)).WithError(err).Debug("family name unavailable, using file name")
		return ref.Stem()
	}
	return name
}

// restoreActive re-registers whichever selection should be rendering,
// after a failed load cleared the slot.
func (c *Controller) restoreActive() {
	ref := c.Active().Ref
	path, err := c.loc.Resolve(ref)
	if err == nil {
		err = c.res.Load(path)
	}
	if err != nil {
		c.log.WithField("ref", string(ref)).WithError(err).Warn("could not restore previous font registration")
	}
}

// familyNameOf reads the font file at path and pulls its family name.
func familyNameOf(path ResolvedPath) (string, error) {
	b, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("reading font file: %w", err)
	}
	return sfnt.FamilyName(b)
}
