package recording

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/gogpu/plotdraw"
)

// ExporterFactory creates a new exporter with default options.
// Factories are registered via Register() and called by NewExporter().
type ExporterFactory func() Exporter

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	exporters  = make(map[string]ExporterFactory)
)

// Register registers an exporter factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Exporter {
//	        return New()
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken, so
// duplicate registrations surface during program initialization.
func Register(name string, factory ExporterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := exporters[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	exporters[name] = factory
}

// Unregister removes an exporter from the registry.
// If the exporter is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(exporters, name)
}

// NewExporter creates a new exporter by name.
//
//	import _ "github.com/gogpu/plotdraw/recording/backends/pdf"
//
//	exp, err := recording.NewExporter("pdf")
//
// The error for an unknown name hints at a forgotten import.
func NewExporter(name string) (Exporter, error) {
	registryMu.RLock()
	factory, ok := exporters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown exporter %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustExporter is like NewExporter but panics on error.
func MustExporter(name string) Exporter {
	e, err := NewExporter(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Exporters returns the registered exporter names in alphabetical order.
func Exporters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an exporter with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := exporters[name]
	return ok
}

// Count returns the number of registered exporters.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(exporters)
}

// Export exports r with the default options of the named exporter.
func Export(name string, r *Recording, size Size) ([]byte, error) {
	e, err := NewExporter(name)
	if err != nil {
		return nil, err
	}
	data, err := e.Export(r, size)
	if err != nil {
		plotdraw.Logger().Warn("recording: export failed", "exporter", name, "err", err)
		return nil, err
	}
	return data, nil
}

// WriteFile exports r with e and writes the result to path.
// Nothing is written if the export fails.
func WriteFile(path string, e Exporter, r *Recording, size Size) error {
	data, err := e.Export(r, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("recording: write %s: %w", path, err)
	}
	return nil
}
