package fontres

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/traytick/fontres/internal/platform"
)

// ResourceManager keeps at most one font file registered with the OS at
// a time. Loading a new file first unloads the previous one; a failed
// load leaves nothing registered rather than something stale.
//
// It is not safe for concurrent use. TrayTick drives it from the UI
// event loop only.
type ResourceManager struct {
	reg    platform.Registrar
	log    *logrus.Logger
	path   ResolvedPath
	loaded bool
}

// NewResourceManager creates a manager on top of the given registrar.
// A nil log falls back to the logrus standard logger.
func NewResourceManager(reg platform.Registrar, log *logrus.Logger) *ResourceManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ResourceManager{reg: reg, log: log}
}

// Load registers the font file at path. Loading the path that is
// already registered is a no-op; any other load swaps the previous
// registration out first.
func (m *ResourceManager) Load(path ResolvedPath) error {
	if m.loaded && m.path == path {
		return nil
	}

	// A failed unload is advisory only; the slot is clear either way.
	_ = m.Unload()

	if err := m.reg.Add(string(path)); err != nil {
		return fmt.Errorf("registering font %s: %w", path, err)
	}
	m.path, m.loaded = path, true
	m.log.WithField("file", string(path)).Debug("font resource registered")
	return nil
}

// Unload removes the current registration, if any. The tracked slot is
// cleared even when the OS call fails, so a later Load never tries to
// unload the same path twice; the failure is still logged and returned.
func (m *ResourceManager) Unload() error {
	if !m.loaded {
		return nil
	}
	path := m.path
	m.path, m.loaded = "", false

	if err := m.reg.Remove(string(path)); err != nil {
		m.log.WithField("file", string(path)).WithError(err).Warn("failed to unregister font resource")
		return fmt.Errorf("unregistering font %s: %w", path, err)
	}
	m.log.WithField("file", string(path)).Debug("font resource unregistered")
	return nil
}

// Current returns the registered path, if one is loaded.
func (m *ResourceManager) Current() (ResolvedPath, bool) {
	return m.path, m.loaded
}
