// Package store defines the persistence slot for the todo list.
package store

import "github.com/tickdone/tick/internal/model"

// Store is a single named slot holding the whole list as one encoded
// blob. Load never fails: a missing or corrupt slot reads as an empty
// list. Save overwrites the slot with the full snapshot; failures are
// absorbed and the session keeps running in memory.
type Store interface {
	Load() []model.Item
	Save(items []model.Item)
}
