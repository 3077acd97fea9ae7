package components

import (
	"github.com/automoto/pongview/interp"
	"github.com/automoto/pongview/shared/messages"
	"github.com/automoto/pongview/stats"
	"github.com/yohamta/donburi"
)

// Snapshots holds the previous/current snapshot pair of a board.
var Snapshots = donburi.NewComponentType[interp.Buffer]()

// Field holds the render constants received at mount. Never mutated after.
var Field = donburi.NewComponentType[messages.Constants]()

// StatsData stores frame and update rate windows for the info overlay.
type StatsData struct {
	Frames    stats.Window
	Updates   stats.Window
	LastFrame float64 // timestamp of the previous frame, for tween deltas
}

var Stats = donburi.NewComponentType[StatsData]()
