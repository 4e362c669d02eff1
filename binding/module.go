// Package binding adapts native predictor functions to a host environment. A Module is a named
// registry of functions taking loosely typed host arguments, marshalled to native vectors before
// the call and back to host values after it. Native errors are translated into HostErrors so the
// host can raise them as its own exceptions.
package binding

import (
	"fmt"
	"sort"
)

// Func is the host facing implementation of a function.
type Func func(args []any) (any, error)

// Function describes a callable exposed to the host.
type Function struct {
	Name string   `json:"name"`
	Doc  string   `json:"doc"`
	Args []string `json:"args"`
	Call Func     `json:"-"`
}

// Caller is the surface a host uses to invoke native functions.
type Caller interface {
	Call(name string, args ...any) (any, error)
	Functions() []*Function
}

// Module is a named collection of functions. Functions are registered before the module is shared
// and the module is read only afterwards.
type Module struct {
	name  string
	funcs map[string]*Function
}

func NewModule(name string) *Module {
	return &Module{
		name:  name,
		funcs: make(map[string]*Function),
	}
}

func (m *Module) Name() string {
	return m.name
}

// Register adds a function to the module.
func (m *Module) Register(fn *Function) error {
	if fn == nil || fn.Name == "" || fn.Call == nil {
		return ErrInvalidFunction
	}
	if _, exists := m.funcs[fn.Name]; exists {
		return fmt.Errorf("%s, %w", fn.Name, ErrDuplicateFunction)
	}
	m.funcs[fn.Name] = fn
	return nil
}

// MustRegister is like Register but panics if the function cannot be added.
func (m *Module) MustRegister(fn *Function) {
	if err := m.Register(fn); err != nil {
		panic(err)
	}
}

// Lookup returns the function registered under name.
func (m *Module) Lookup(name string) (*Function, error) {
	fn, exists := m.funcs[name]
	if !exists {
		return nil, &HostError{
			Type:    AttributeError,
			Message: fmt.Sprintf("module '%s' has no attribute '%s'", m.name, name),
		}
	}
	return fn, nil
}

// Names returns the sorted names of all registered functions.
func (m *Module) Names() []string {
	names := make([]string, 0, len(m.funcs))
	for name := range m.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Functions returns all registered functions sorted by name.
func (m *Module) Functions() []*Function {
	names := m.Names()
	fns := make([]*Function, 0, len(names))
	for _, name := range names {
		fns = append(fns, m.funcs[name])
	}
	return fns
}

// Call invokes the named function with host arguments. Any error returned is a *HostError. A
// panicking implementation is returned as a RuntimeError.
func (m *Module) Call(name string, args ...any) (res any, err error) {
	fn, err := m.Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(args) != len(fn.Args) {
		return nil, typeErrorf(
			"%s() takes %d positional arguments but %d were given",
			fn.Name, len(fn.Args), len(args),
		)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = newHostError(RuntimeError, fmt.Errorf("%s() panicked, %v", fn.Name, r))
		}
	}()

	res, err = fn.Call(args)
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}
