// Package view implements the board hook: the per-element context that owns
// the snapshot buffer, the render constants and the frame loop of one board.
package view

import (
	"fmt"

	"github.com/automoto/pongview/components"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/interp"
	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/render"
	"github.com/automoto/pongview/shared/messages"
	"github.com/automoto/pongview/systems"
	"github.com/automoto/pongview/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Cue plays a sound effect and returns without waiting for it.
type Cue interface {
	Play(id cfg.SoundID) error
}

// Board is the hook for the "board" element. Nothing is shared between two
// boards: each mount builds its own donburi world.
type Board struct {
	sched host.Scheduler
	clock host.Clock
	cue   Cue
	log   *zap.SugaredLogger

	world donburi.World
	loop  *Loop
}

var _ host.Hook = (*Board)(nil)

type Option func(*Board)

// WithCue sets the sound played for hit snapshots.
func WithCue(c Cue) Option {
	return func(b *Board) { b.cue = c }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Board) { b.log = log }
}

// NewBoard creates an idle board. Frames are requested from sched and
// timestamps read from clock.
func NewBoard(sched host.Scheduler, clock host.Clock, opts ...Option) *Board {
	b := &Board{
		sched: sched,
		clock: clock,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OnMount reads the initial snapshot and the render constants and starts the
// frame loop. Missing or malformed data fails the mount.
func (b *Board) OnMount(el host.Element) error {
	snap, err := decodeClient(el)
	if err != nil {
		return err
	}

	raw, ok := el.Data(messages.KeyConstants)
	if !ok {
		return fmt.Errorf("%s attribute: %w", messages.KeyConstants, messages.ErrMissingField)
	}
	field, err := messages.DecodeConstants(raw)
	if err != nil {
		return err
	}

	if b.loop != nil {
		b.loop.Cancel()
	}
	b.world = donburi.NewWorld()
	systems.SpawnBoard(b.world, snap, field, b.clock())
	b.loop = b.Start()

	b.log.Infow("board mounted",
		"field", fmt.Sprintf("%gx%g", field.FieldWidth, field.FieldHeight),
		"interval", field.UpdateInterval,
		"id", snap.ID,
	)
	return nil
}

// OnUpdate pushes the next snapshot. A malformed snapshot is dropped and the
// board keeps rendering the last valid state.
func (b *Board) OnUpdate(el host.Element) {
	now := b.clock()

	if b.world == nil {
		b.log.Warn("update before mount dropped")
		return
	}

	snap, err := decodeClient(el)
	if err != nil {
		b.log.Warnw("dropped malformed update", "err", err)
		return
	}

	reset, _ := systems.PushSnapshot(b.world, snap, now)
	if reset {
		b.log.Debugw("interpolation reset", "id", snap.ID)
	}

	if snap.Sound {
		systems.FlareGlow(b.world)
		b.playHit()
	}
}

// OnDestroy stops the frame loop and releases the world.
func (b *Board) OnDestroy() {
	if b.loop != nil {
		b.loop.Cancel()
		b.loop = nil
	}
	b.world = nil
}

// Running reports whether the board has a live frame loop.
func (b *Board) Running() bool {
	return b.loop != nil && b.loop.Running()
}

// Buffer returns a copy of the snapshot buffer.
func (b *Board) Buffer() (interp.Buffer, bool) {
	entry, ok := b.entry()
	if !ok {
		return interp.Buffer{}, false
	}
	return *components.Snapshots.Get(entry), true
}

// Field returns the render constants received at mount.
func (b *Board) Field() (messages.Constants, bool) {
	entry, ok := b.entry()
	if !ok {
		return messages.Constants{}, false
	}
	return *components.Field.Get(entry), true
}

// Stats returns a copy of the rate windows.
func (b *Board) Stats() (components.StatsData, bool) {
	entry, ok := b.entry()
	if !ok {
		return components.StatsData{}, false
	}
	return *components.Stats.Get(entry), true
}

func (b *Board) entry() (*donburi.Entry, bool) {
	if b.world == nil {
		return nil, false
	}
	return tags.Board.First(b.world)
}

func (b *Board) playHit() {
	if b.cue == nil {
		return
	}
	if err := b.cue.Play(cfg.SoundHit); err != nil {
		b.log.Debugw("hit cue failed", "err", err)
	}
}

// Frame draws world at t. Exposed for hosts that drive frames themselves.
func Frame(world donburi.World, t float64, s render.Surface) {
	systems.DrawBoard(world, s, t)
	systems.AdvanceGlow(world, t)
}

func decodeClient(el host.Element) (messages.Snapshot, error) {
	raw, ok := el.Data(messages.KeyClient)
	if !ok {
		return messages.Snapshot{}, fmt.Errorf("%s attribute: %w", messages.KeyClient, messages.ErrMissingField)
	}
	return messages.DecodeSnapshot(raw)
}
