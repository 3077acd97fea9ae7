package archetypes

import (
	"github.com/automoto/pongview/components"
	"github.com/automoto/pongview/tags"
	"github.com/yohamta/donburi"
)

var (
	Board = newArchetype(
		tags.Board,
		components.Snapshots,
		components.Field,
		components.Stats,
		components.Glow,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
