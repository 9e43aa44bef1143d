// Package platform provides the OS font registration primitive the
// resource manager runs on. On Windows registration goes through GDI
// with process-private visibility; elsewhere it is a tracked no-op so
// the rest of the program behaves identically under tests and on
// development machines.
package platform

// Registrar adds and removes font files from the process's font table.
type Registrar interface {
	// Add registers the font file at path for this process.
	Add(path string) error

	// Remove drops a registration made by Add.
	Remove(path string) error
}
