// Package persistence keeps the best score across runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const recordKey = "record"

// SavedRecord is the score history stored on disk
type SavedRecord struct {
	BestScore int `json:"bestScore"`
	Games     int `json:"games"`
	LastScore int `json:"lastScore"`
}

// itemStore is the part of gdata.Manager the store needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	items itemStore
}

// Open initializes gdata storage for appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", appName, err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved record, or a zero record if nothing was saved yet
func (s *Store) Load() (SavedRecord, error) {
	var rec SavedRecord
	data, err := s.items.LoadItem(recordKey)
	if err != nil {
		return rec, fmt.Errorf("load record: %w", err)
	}
	if len(data) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return SavedRecord{}, fmt.Errorf("parse record: %w", err)
	}
	return rec, nil
}

func (s *Store) BestScore() (int, error) {
	rec, err := s.Load()
	return rec.BestScore, err
}

// RecordScore stores a finished game's score and reports whether it is a new best.
// A corrupt record is replaced rather than blocking the save.
func (s *Store) RecordScore(score int) (bool, error) {
	rec, err := s.Load()
	if err != nil {
		log.Printf("Warning: Could not read score record, starting over: %v", err)
		rec = SavedRecord{}
	}

	rec, best := rec.with(score)
	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("serialize record: %w", err)
	}
	if err := s.items.SaveItem(recordKey, data); err != nil {
		return false, fmt.Errorf("save record: %w", err)
	}
	return best, nil
}

func (r SavedRecord) with(score int) (SavedRecord, bool) {
	r.Games++
	r.LastScore = score
	if score > r.BestScore {
		r.BestScore = score
		return r, true
	}
	return r, false
}
