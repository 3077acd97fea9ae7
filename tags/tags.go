package tags

import "github.com/yohamta/donburi"

var (
	Board = donburi.NewTag().SetName("Board")
)
