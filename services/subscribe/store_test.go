package subscribe

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestAddAndList(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "data/subscribers.json")

	sub, err := store.Add("Ada@Example.com ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sub.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", sub.Email)
	}
	if sub.ID == "" {
		t.Fatal("expected a generated id")
	}

	subs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscriber, got %d", len(subs))
	}
}

func TestAddDeduplicates(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "subscribers.json")

	first, err := store.Add("chidi@example.com")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := store.Add("CHIDI@example.com")
	if err != nil {
		t.Fatalf("Add (dup) failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same record for duplicate signup, got %q and %q", first.ID, second.ID)
	}

	subs, _ := store.List()
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscriber after duplicate, got %d", len(subs))
	}
}

func TestAddRejectsEmptyEmail(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "subscribers.json")
	for _, email := range []string{"", "   "} {
		if _, err := store.Add(email); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("Add(%q): expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := NewStore(fs, "subscribers.json").Add("ngozi@example.com"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	subs, err := NewStore(fs, "subscribers.json").List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 1 || subs[0].Email != "ngozi@example.com" {
		t.Fatalf("unexpected subscribers: %+v", subs)
	}
}
