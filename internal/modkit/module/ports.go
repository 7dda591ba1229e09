package module

import "reflect"

// PortSet marks a module's exported surface. Each module declares a
// concrete struct of interfaces and returns it from Ports
type PortSet = any

// PortsOf pulls a T out of a module's Ports bundle. The bundle may be T
// itself or a struct carrying T in an exported field
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics when the module does not expose T. Composition roots
// use it so a miswired module fails at startup, not on request
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}
