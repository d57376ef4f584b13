package logging

import (
	"context"
	"sort"
	"sync"
)

var (
	// global is the default adapter used when no package-specific adapter is set
	global Adapter = NewNoOpAdapter()
	// packages stores package-specific adapters
	packages sync.Map
	// mu protects the global adapter
	mu sync.RWMutex
)

// SetGlobalAdapter sets the global logging adapter for all packages
// This will be used as the default for all packages unless they have a specific adapter
func SetGlobalAdapter(adapter Adapter) {
	mu.Lock()
	defer mu.Unlock()
	global = adapter
}

// GetGlobalAdapter returns the current global adapter
func GetGlobalAdapter() Adapter {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetPackageAdapter sets a specific adapter for a package
// This overrides the global adapter for the specified package
func SetPackageAdapter(pkg string, adapter Adapter) {
	packages.Store(pkg, adapter)
}

// DynamicAdapter resolves the package or global adapter on every call,
// so package loggers created at init time follow later configuration
type DynamicAdapter struct {
	pkg string
}

// GetPackageLogger returns a logger for a specific package
func GetPackageLogger(pkg string) Adapter {
	return &DynamicAdapter{pkg: pkg}
}

func (d *DynamicAdapter) SetLevel(level Level) Adapter {
	SetPackageLevel(d.pkg, level)
	return d
}

func (d *DynamicAdapter) GetLevel() Level { return d.current().GetLevel() }
func (d *DynamicAdapter) Trace() Event    { return d.current().Trace() }
func (d *DynamicAdapter) Debug() Event    { return d.current().Debug() }
func (d *DynamicAdapter) Info() Event     { return d.current().Info() }
func (d *DynamicAdapter) Warn() Event     { return d.current().Warn() }
func (d *DynamicAdapter) Error() Event    { return d.current().Error() }
func (d *DynamicAdapter) Fatal() Event    { return d.current().Fatal() }
func (d *DynamicAdapter) Panic() Event    { return d.current().Panic() }

func (d *DynamicAdapter) Printf(format string, v ...interface{}) {
	d.current().Printf(format, v...)
}

func (d *DynamicAdapter) WithContext(ctx context.Context) Adapter {
	return d.current().WithContext(ctx)
}

func (d *DynamicAdapter) WithFields(fields ...Field) Adapter {
	return d.current().WithFields(fields...)
}

func (d *DynamicAdapter) WithPackage(pkg string) Adapter {
	return d.current().WithPackage(pkg)
}

// current returns the current adapter for this package
func (d *DynamicAdapter) current() Adapter {
	if adapter, ok := packages.Load(d.pkg); ok {
		return adapter.(Adapter)
	}

	mu.RLock()
	defer mu.RUnlock()
	return global.WithPackage(d.pkg)
}

// DisablePackage disables logging for a specific package
func DisablePackage(pkg string) {
	SetPackageAdapter(pkg, NewNoOpAdapter())
}

// EnablePackage removes package-specific adapter, falling back to global
func EnablePackage(pkg string) {
	packages.Delete(pkg)
}

// SetPackageLevel sets the log level for a specific package
// If the package doesn't have a specific adapter, this creates one based on the global adapter
func SetPackageLevel(pkg string, level Level) {
	if adapter, ok := packages.Load(pkg); ok {
		adapter.(Adapter).SetLevel(level)
		return
	}

	mu.RLock()
	var adapter Adapter
	switch g := global.(type) {
	case *ZerologAdapter:
		adapter = NewZerologAdapterWithLogger(g.logger)
	case *StandardAdapter:
		adapter = NewStandardAdapterWithLogger(g.logger)
	default:
		adapter = NewNoOpAdapter()
	}
	mu.RUnlock()

	SetPackageAdapter(pkg, adapter.WithPackage(pkg).SetLevel(level))
}

// GetPackageLevel returns the log level for a specific package
func GetPackageLevel(pkg string) Level {
	return GetPackageLogger(pkg).GetLevel()
}

// ListPackages returns all packages that have specific adapters, sorted
func ListPackages() []string {
	var p []string
	packages.Range(func(key, _ interface{}) bool {
		if pkg, ok := key.(string); ok {
			p = append(p, pkg)
		}
		return true
	})
	sort.Strings(p)
	return p
}
