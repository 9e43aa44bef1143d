//go:build !windows

package platform

import "github.com/sirupsen/logrus"

// nullRegistrar satisfies Registrar on platforms without per-process
// font registration. Locating, parsing, and persistence still work;
// the glyphs simply are not activated for rendering.
type nullRegistrar struct{}

// New returns a registrar that logs calls without touching the OS.
func New() Registrar {
	return nullRegistrar{}
}

func (nullRegistrar) Add(path string) error {
	logrus.WithField("file", path).Debug("font registration skipped on this platform")
	return nil
}

func (nullRegistrar) Remove(path string) error {
	logrus.WithField("file", path).Debug("font unregistration skipped on this platform")
	return nil
}
