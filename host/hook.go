// Package host is the lifecycle extension point the board view plugs into.
// Hooks are registered per element role; the host dispatches mount, update
// and destroy events to them and grants frame requests before each repaint.
//
// Everything in this package runs on the game goroutine.
package host

import (
	"fmt"

	"github.com/automoto/pongview/shared/messages"
	"go.uber.org/zap"
)

// Element is a hooked element as seen by its hook.
type Element interface {
	Data(key string) ([]byte, bool)
}

// Hook reacts to the lifecycle of one element.
type Hook interface {
	// OnMount is called once. An error is fatal for the element.
	OnMount(el Element) error
	// OnUpdate is called for every state push after a successful mount.
	OnUpdate(el Element)
	// OnDestroy releases everything the hook started, including frame loops.
	OnDestroy()
}

// Factory creates a fresh hook instance for a mount.
type Factory func() Hook

// Registry maps element roles to hook factories and tracks mounted instances.
type Registry struct {
	factories map[string]Factory
	mounted   map[string]Hook
	log       *zap.SugaredLogger
}

func NewRegistry(log *zap.SugaredLogger) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mounted:   make(map[string]Hook),
		log:       log,
	}
}

// Register installs the factory used for elements with the given role.
func (r *Registry) Register(role string, f Factory) {
	r.factories[role] = f
}

// Mounted returns the live hook for role.
func (r *Registry) Mounted(role string) (Hook, bool) {
	h, ok := r.mounted[role]
	return h, ok
}

// Dispatch delivers one lifecycle event. Only a failed mount returns an
// error; everything else is logged and absorbed.
func (r *Registry) Dispatch(ev messages.Event) error {
	switch ev.Kind {
	case messages.EventMount:
		return r.mount(ev)
	case messages.EventUpdate:
		h, ok := r.mounted[ev.Role]
		if !ok {
			r.log.Debugw("update for unmounted element dropped", "role", ev.Role)
			return nil
		}
		h.OnUpdate(ev.Dataset)
	case messages.EventDestroy:
		r.destroy(ev.Role)
	default:
		r.log.Warnw("unknown lifecycle event", "event", ev.Kind, "role", ev.Role)
	}
	return nil
}

func (r *Registry) mount(ev messages.Event) error {
	f, ok := r.factories[ev.Role]
	if !ok {
		r.log.Debugw("no hook registered", "role", ev.Role)
		return nil
	}

	// A remount replaces the previous instance.
	r.destroy(ev.Role)

	h := f()
	if err := h.OnMount(ev.Dataset); err != nil {
		h.OnDestroy()
		return fmt.Errorf("mount %s: %w", ev.Role, err)
	}
	r.mounted[ev.Role] = h
	r.log.Debugw("mounted", "role", ev.Role)
	return nil
}

func (r *Registry) destroy(role string) {
	h, ok := r.mounted[role]
	if !ok {
		return
	}
	delete(r.mounted, role)
	h.OnDestroy()
	r.log.Debugw("destroyed", "role", role)
}

// DestroyAll tears down every mounted hook.
func (r *Registry) DestroyAll() {
	for role := range r.mounted {
		r.destroy(role)
	}
}
