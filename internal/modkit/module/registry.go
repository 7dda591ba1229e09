package module

import "sync"

// Process-wide port registry. The composition root registers each module's
// ports by name so late consumers can look them up without holding a
// module reference

var registry = struct {
	sync.RWMutex
	byName map[string]any
}{byName: map[string]any{}}

// Register stores a port set under a module name, replacing any previous
// entry
func Register(name string, ports any) {
	registry.Lock()
	registry.byName[name] = ports
	registry.Unlock()
}

// PortsAs fetches a registered port set and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	registry.RLock()
	v, ok := registry.byName[name]
	registry.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry between tests
func Reset() {
	registry.Lock()
	registry.byName = map[string]any{}
	registry.Unlock()
}
