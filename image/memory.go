package image

import "sync"

// Memory is an in-process Module implementation. Exports and descriptors are
// mutable so the runtime's import hooking can rewrite address slots in place.
type Memory struct {
	name         string
	exports      map[string]Export
	version      *FixedFileInfo
	imports      []*ImportDescriptor
	delayImports []*ImportDescriptor
	mu           sync.RWMutex
}

// NewMemory creates an empty in-process module with the given name.
func NewMemory(name string) *Memory {
	return &Memory{
		name:    name,
		exports: make(map[string]Export),
	}
}

// Name returns the module's name.
func (m *Memory) Name() string {
	return m.name
}

// SetExport defines or replaces an exported symbol.
func (m *Memory) SetExport(symbol string, fn Export) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exports[symbol] = fn
}

// Export resolves an exported symbol by name.
func (m *Memory) Export(symbol string) (Export, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.exports[symbol]
	return fn, ok
}

// SetVersionInfo attaches a version-information resource to the image.
func (m *Memory) SetVersionInfo(info FixedFileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version = &info
}

// VersionInfo returns the image's fixed version-information block, if any.
func (m *Memory) VersionInfo() (FixedFileInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.version == nil {
		return FixedFileInfo{}, false
	}
	return *m.version, true
}

// AddImport appends a static import descriptor.
func (m *Memory) AddImport(desc *ImportDescriptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imports = append(m.imports, desc)
}

// AddDelayImport appends a deferred-load descriptor.
func (m *Memory) AddDelayImport(desc *ImportDescriptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delayImports = append(m.delayImports, desc)
}

// Imports returns the static import descriptor array.
func (m *Memory) Imports() []*ImportDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.imports
}

// DelayImports returns the deferred-load descriptor array.
func (m *Memory) DelayImports() []*ImportDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.delayImports
}

// ImportAddress reads the current import-address-table slot for the given
// library and symbol, checking static linkage first then deferred linkage.
// This is the path a host call takes through its import table.
func (m *Memory) ImportAddress(library, symbol string) (Export, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, descs := range [][]*ImportDescriptor{m.imports, m.delayImports} {
		for _, desc := range descs {
			if desc.Library != library {
				continue
			}
			for i, name := range desc.Names {
				if name == symbol && i < len(desc.Addrs) {
					return desc.Addrs[i], true
				}
			}
		}
	}
	return nil, false
}
