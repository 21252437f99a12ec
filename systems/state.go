package systems

import (
	"github.com/automoto/merge-drop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithRunningCheck skips a system once the session is over
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e.World) {
			return
		}
		system(e)
	}
}

// IsRunning returns true while the session has not reached game over
func IsRunning(w donburi.World) bool {
	s, ok := GetSession(w)
	return ok && s.State == components.SessionActive
}

func GetSession(w donburi.World) (*components.SessionData, bool) {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

func GetRuntime(w donburi.World) (*components.RuntimeData, bool) {
	entry, ok := components.Runtime.First(w)
	if !ok {
		return nil, false
	}
	return components.Runtime.Get(entry), true
}

func GetContacts(w donburi.World) (*components.ContactsData, bool) {
	entry, ok := components.Contacts.First(w)
	if !ok {
		return nil, false
	}
	return components.Contacts.Get(entry), true
}

func GetMergeQueue(w donburi.World) (*components.MergeQueueData, bool) {
	entry, ok := components.MergeQueue.First(w)
	if !ok {
		return nil, false
	}
	return components.MergeQueue.Get(entry), true
}
