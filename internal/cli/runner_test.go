package cli

import (
	"testing"

	"github.com/tickdone/tick/internal/model"
	"github.com/tickdone/tick/internal/store/memstore"
)

func TestRunAdd(t *testing.T) {
	t.Run("adds joined words", func(t *testing.T) {
		st := memstore.New()
		code := Run([]string{"add", "Buy", "milk"}, st, Options{})
		if code != 0 {
			t.Fatalf("code = %d, want 0", code)
		}
		if len(st.Items) != 1 || st.Items[0].Text != "Buy milk" {
			t.Errorf("Items = %+v", st.Items)
		}
	})

	t.Run("prepends to an existing list", func(t *testing.T) {
		st := memstore.New(model.Item{ID: "a1", Text: "old", CreatedAt: 1})
		Run([]string{"add", "new"}, st, Options{})
		if len(st.Items) != 2 || st.Items[0].Text != "new" {
			t.Errorf("Items = %+v", st.Items)
		}
	})

	t.Run("whitespace-only text is a usage error", func(t *testing.T) {
		st := memstore.New()
		code := Run([]string{"add", "  "}, st, Options{})
		if code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
		if st.Saves != 0 {
			t.Errorf("Saves = %d, want 0", st.Saves)
		}
	})

	t.Run("no args is a usage error", func(t *testing.T) {
		if code := Run([]string{"add"}, memstore.New(), Options{}); code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
	})
}

func TestRunEdit(t *testing.T) {
	st := memstore.New(
		model.Item{ID: "a1", Text: "one", CreatedAt: 1},
		model.Item{ID: "a2", Text: "two", CreatedAt: 2},
	)

	t.Run("replaces text at index", func(t *testing.T) {
		code := Run([]string{"edit", "2", "two", "revised"}, st, Options{})
		if code != 0 {
			t.Fatalf("code = %d, want 0", code)
		}
		if st.Items[1].Text != "two revised" {
			t.Errorf("Text = %q", st.Items[1].Text)
		}
		if st.Items[1].ID != "a2" || st.Items[1].CreatedAt != 2 {
			t.Error("id or createdAt changed")
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if code := Run([]string{"edit", "9", "x"}, st, Options{}); code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
	})

	t.Run("not a number", func(t *testing.T) {
		if code := Run([]string{"edit", "first", "x"}, st, Options{}); code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
	})
}

func TestRunRemove(t *testing.T) {
	t.Run("removes at index", func(t *testing.T) {
		st := memstore.New(
			model.Item{ID: "a1", Text: "one", CreatedAt: 1},
			model.Item{ID: "a2", Text: "two", CreatedAt: 2},
		)
		code := Run([]string{"rm", "1"}, st, Options{})
		if code != 0 {
			t.Fatalf("code = %d, want 0", code)
		}
		if len(st.Items) != 1 || st.Items[0].ID != "a2" {
			t.Errorf("Items = %+v", st.Items)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		st := memstore.New()
		if code := Run([]string{"rm", "1"}, st, Options{}); code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
	})
}

func TestRunMisc(t *testing.T) {
	t.Run("unknown subcommand", func(t *testing.T) {
		if code := Run([]string{"frobnicate"}, memstore.New(), Options{}); code != 2 {
			t.Errorf("code = %d, want 2", code)
		}
	})

	t.Run("help", func(t *testing.T) {
		if code := Run([]string{"help"}, memstore.New(), Options{}); code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})

	t.Run("plain list", func(t *testing.T) {
		st := memstore.New(model.Item{ID: "a1", Text: "one", CreatedAt: 1})
		if code := Run([]string{"ls"}, st, Options{Plain: true}); code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})

	t.Run("plain empty list", func(t *testing.T) {
		if code := Run([]string{"ls"}, memstore.New(), Options{Plain: true}); code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})
}
