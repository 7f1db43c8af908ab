package model

import "strings"

// List operations return fresh slices and never touch the input, so an
// earlier snapshot stays valid after a mutation.

// Add prepends a new item built from text. Text is trimmed first; if
// nothing remains, the input list comes back unchanged and ok is false.
func Add(items []Item, text string) ([]Item, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return items, false
	}
	out := make([]Item, 0, len(items)+1)
	out = append(out, Item{ID: NewID(), Text: t, CreatedAt: Now()})
	out = append(out, items...)
	return out, true
}

// SetText replaces the text of the item with the given id, keeping its
// id and creation time. Empty-after-trim text or an unknown id is a
// no-op with ok false.
func SetText(items []Item, id, text string) ([]Item, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return items, false
	}
	for i := range items {
		if items[i].ID == id {
			out := make([]Item, len(items))
			copy(out, items)
			out[i].Text = t
			return out, true
		}
	}
	return items, false
}

// Remove deletes the item with the given id. Unknown ids are a no-op
// with ok false.
func Remove(items []Item, id string) ([]Item, bool) {
	for i := range items {
		if items[i].ID == id {
			out := make([]Item, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, true
		}
	}
	return items, false
}

// Find returns the item with the given id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
