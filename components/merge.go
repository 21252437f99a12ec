package components

import (
	"github.com/yohamta/donburi"
)

// MergeRef points at a fruit by entity handle and identity. Both must still
// match for the fruit to count as live.
type MergeRef struct {
	Entity donburi.Entity
	ID     FruitID
}

type MergePair struct {
	A, B MergeRef
}

// MergeQueueData holds pending merges and the set of claimed fruit.
// This is a singleton component.
type MergeQueueData struct {
	Pairs   []MergePair
	Merging map[FruitID]struct{}
}

var MergeQueue = donburi.NewComponentType[MergeQueueData]()

// IsMerging reports whether id is claimed by a pending merge
func (q *MergeQueueData) IsMerging(id FruitID) bool {
	_, ok := q.Merging[id]
	return ok
}

// Claim reserves both fruit and appends the pair. It returns false without
// changing anything if either fruit is already claimed.
func (q *MergeQueueData) Claim(p MergePair) bool {
	if p.A.ID == p.B.ID || q.IsMerging(p.A.ID) || q.IsMerging(p.B.ID) {
		return false
	}
	if q.Merging == nil {
		q.Merging = make(map[FruitID]struct{})
	}
	q.Merging[p.A.ID] = struct{}{}
	q.Merging[p.B.ID] = struct{}{}
	q.Pairs = append(q.Pairs, p)
	return true
}

// Release drops the claims on the given fruit
func (q *MergeQueueData) Release(ids ...FruitID) {
	for _, id := range ids {
		delete(q.Merging, id)
	}
}

// PopBatch removes up to n pairs from the front of the queue. The rest keep
// their order for the next tick.
func (q *MergeQueueData) PopBatch(n int) []MergePair {
	if n > len(q.Pairs) {
		n = len(q.Pairs)
	}
	if n <= 0 {
		return nil
	}
	batch := make([]MergePair, n)
	copy(batch, q.Pairs[:n])
	rest := copy(q.Pairs, q.Pairs[n:])
	clear(q.Pairs[rest:])
	q.Pairs = q.Pairs[:rest]
	return batch
}

func (q *MergeQueueData) Len() int {
	return len(q.Pairs)
}
