// Package memstore is an in-memory store.Store, used as the test
// substitute for the JSON slot.
package memstore

import "github.com/tickdone/tick/internal/model"

type Store struct {
	Items []model.Item
	Saves int // number of Save calls, for asserting write behavior
}

func New(items ...model.Item) *Store {
	return &Store{Items: items}
}

func (s *Store) Load() []model.Item {
	out := make([]model.Item, len(s.Items))
	copy(out, s.Items)
	return out
}

func (s *Store) Save(items []model.Item) {
	out := make([]model.Item, len(items))
	copy(out, items)
	s.Items = out
	s.Saves++
}
