package host

import (
	"errors"
	"testing"

	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/shared/messages"
)

type recordingHook struct {
	id       int
	log      *[]string
	mountErr error
}

func (h *recordingHook) OnMount(Element) error {
	*h.log = append(*h.log, "mount")
	return h.mountErr
}

func (h *recordingHook) OnUpdate(Element) {
	*h.log = append(*h.log, "update")
}

func (h *recordingHook) OnDestroy() {
	*h.log = append(*h.log, "destroy")
}

func newTestRegistry(calls *[]string, mountErr error) (*Registry, *[]*recordingHook) {
	var made []*recordingHook
	r := NewRegistry(logging.Nop())
	r.Register("board", func() Hook {
		h := &recordingHook{id: len(made), log: calls, mountErr: mountErr}
		made = append(made, h)
		return h
	})
	return r, &made
}

func event(kind messages.EventKind, role string) messages.Event {
	return messages.Event{Kind: kind, Role: role, Dataset: messages.Dataset{}}
}

func TestRegistryLifecycle(t *testing.T) {
	type spec struct {
		events   []messages.Event
		expCalls []string
		expHooks int
		expMount bool
	}

	specs := []spec{
		{
			events:   []messages.Event{event(messages.EventMount, "board"), event(messages.EventUpdate, "board"), event(messages.EventUpdate, "board")},
			expCalls: []string{"mount", "update", "update"},
			expHooks: 1,
			expMount: true,
		},
		{
			events:   []messages.Event{event(messages.EventUpdate, "board")},
			expCalls: nil,
		},
		{
			events:   []messages.Event{event(messages.EventMount, "score"), event(messages.EventUpdate, "score")},
			expCalls: nil,
		},
		{
			events:   []messages.Event{event(messages.EventMount, "board"), event(messages.EventDestroy, "board"), event(messages.EventUpdate, "board")},
			expCalls: []string{"mount", "destroy"},
			expHooks: 1,
		},
		{
			events:   []messages.Event{event(messages.EventMount, "board"), event(messages.EventMount, "board")},
			expCalls: []string{"mount", "destroy", "mount"},
			expHooks: 2,
			expMount: true,
		},
		{
			events:   []messages.Event{event(messages.EventDestroy, "board")},
			expCalls: nil,
		},
	}

	for index, s := range specs {
		var calls []string
		r, made := newTestRegistry(&calls, nil)
		for _, ev := range s.events {
			if err := r.Dispatch(ev); err != nil {
				t.Fatalf("[spec %d] unexpected error: %v", index, err)
			}
		}

		if len(calls) != len(s.expCalls) {
			t.Fatalf("[spec %d] expected calls %v; got %v", index, s.expCalls, calls)
		}
		for i := range calls {
			if calls[i] != s.expCalls[i] {
				t.Fatalf("[spec %d] expected calls %v; got %v", index, s.expCalls, calls)
			}
		}
		if len(*made) != s.expHooks {
			t.Fatalf("[spec %d] expected %d hook instances; got %d", index, s.expHooks, len(*made))
		}
		if _, mounted := r.Mounted("board"); mounted != s.expMount {
			t.Fatalf("[spec %d] expected mounted=%t", index, s.expMount)
		}
	}
}

func TestRegistryRemountUsesFreshInstance(t *testing.T) {
	var calls []string
	r, made := newTestRegistry(&calls, nil)

	_ = r.Dispatch(event(messages.EventMount, "board"))
	_ = r.Dispatch(event(messages.EventMount, "board"))

	h, ok := r.Mounted("board")
	if !ok {
		t.Fatal("expected board to be mounted")
	}
	if h != Hook((*made)[1]) {
		t.Fatal("expected the second instance to be live")
	}
}

func TestRegistryFailedMount(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	r, _ := newTestRegistry(&calls, boom)

	err := r.Dispatch(event(messages.EventMount, "board"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped mount error; got %v", err)
	}
	if _, ok := r.Mounted("board"); ok {
		t.Fatal("expected failed mount to leave nothing mounted")
	}
	if len(calls) != 2 || calls[1] != "destroy" {
		t.Fatalf("expected failed hook to be torn down; got %v", calls)
	}

	if err := r.Dispatch(event(messages.EventUpdate, "board")); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 {
		t.Fatalf("expected update after failed mount to be dropped; got %v", calls)
	}
}

func TestRegistryDestroyAll(t *testing.T) {
	var calls []string
	r := NewRegistry(logging.Nop())
	for _, role := range []string{"board", "replay"} {
		r.Register(role, func() Hook { return &recordingHook{log: &calls} })
		_ = r.Dispatch(event(messages.EventMount, role))
	}

	r.DestroyAll()
	if len(calls) != 4 {
		t.Fatalf("expected two mounts and two destroys; got %v", calls)
	}
	for _, role := range []string{"board", "replay"} {
		if _, ok := r.Mounted(role); ok {
			t.Fatalf("expected %s to be destroyed", role)
		}
	}

	r.DestroyAll()
	if len(calls) != 4 {
		t.Fatal("expected second DestroyAll to be a no-op")
	}
}
