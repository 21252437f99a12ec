package components

import (
	"time"

	"github.com/automoto/merge-drop/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactKey identifies an unordered pair of fruits
type ContactKey struct {
	Lo, Hi FruitID
}

// NewContactKey orders the pair so (a, b) and (b, a) share a key
func NewContactKey(a, b FruitID) ContactKey {
	if b < a {
		a, b = b, a
	}
	return ContactKey{Lo: a, Hi: b}
}

// Has reports whether id is one side of the pair
func (k ContactKey) Has(id FruitID) bool {
	return k.Lo == id || k.Hi == id
}

type ContactRecord struct {
	Start    time.Time // first observed touch
	LastSeen time.Time
}

// ContactsData is the per-session contact record store.
// This is a singleton component.
type ContactsData struct {
	Records map[ContactKey]*ContactRecord
}

var Contacts = donburi.NewComponentType[ContactsData]()

// ContactEvents carries engine contact events into the world. Handlers run when
// the contact dispatch system processes the queue.
var ContactEvents = events.NewEventType[physics.Contact]()

// Track upserts the record for the pair. Start is only set on creation.
func (c *ContactsData) Track(a, b FruitID, now time.Time) *ContactRecord {
	if c.Records == nil {
		c.Records = make(map[ContactKey]*ContactRecord)
	}
	k := NewContactKey(a, b)
	rec, ok := c.Records[k]
	if !ok {
		rec = &ContactRecord{Start: now}
		c.Records[k] = rec
	}
	rec.LastSeen = now
	return rec
}

// Get returns the record for the pair, if any
func (c *ContactsData) Get(a, b FruitID) (*ContactRecord, bool) {
	rec, ok := c.Records[NewContactKey(a, b)]
	return rec, ok
}

// Clear deletes the record for the pair
func (c *ContactsData) Clear(a, b FruitID) {
	delete(c.Records, NewContactKey(a, b))
}

// ClearFruit deletes every record involving id
func (c *ContactsData) ClearFruit(id FruitID) {
	for k := range c.Records {
		if k.Has(id) {
			delete(c.Records, k)
		}
	}
}

func (c *ContactsData) Len() int {
	return len(c.Records)
}
