package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FruitID is the identity token of a fruit. It is generated once at spawn and
// never reused.
type FruitID string

type FruitData struct {
	ID        FruitID
	Tier      int  // index into the tier table, fixed for the fruit's life
	Merging   bool // claimed by a queued merge
	SpawnedAt time.Time
}

var Fruit = donburi.NewComponentType[FruitData]()
