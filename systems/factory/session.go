package factory

import (
	"github.com/automoto/merge-drop/archetypes"
	"github.com/automoto/merge-drop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding session state, collaborators,
// contact records and the merge queue
func CreateSession(ecs *ecs.ECS, rt components.RuntimeData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Runtime.SetValue(session, rt)
	components.Session.SetValue(session, components.SessionData{
		State: components.SessionActive,
	})
	components.Contacts.SetValue(session, components.ContactsData{
		Records: make(map[components.ContactKey]*components.ContactRecord, rt.Config.Merge.ContactMapSize),
	})
	components.MergeQueue.SetValue(session, components.MergeQueueData{
		Merging: make(map[components.FruitID]struct{}),
	})
	return session
}
