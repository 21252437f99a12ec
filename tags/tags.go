package tags

import "github.com/yohamta/donburi"

var (
	Fruit = donburi.NewTag().SetName("Fruit")
	Wall  = donburi.NewTag().SetName("Wall")
	Floor = donburi.NewTag().SetName("Floor")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBody  = "body"
)
