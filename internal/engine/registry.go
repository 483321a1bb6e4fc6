package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownComponent is returned by CreateComponent for unregistered names.
var ErrUnknownComponent = errors.New("unknown component")

// ComponentFactory builds a Component from scene-file props.
type ComponentFactory func(props Props) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Packages call this
// from init so the scene loader can build their components by name.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and builds it.
func CreateComponent(name string, props Props) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	if props == nil {
		props = Props{}
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return c, nil
}

// RegisteredComponents returns a sorted list of all registered names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
