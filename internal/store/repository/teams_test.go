package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/storetest"
)

func teamFixture() *storetest.Fake {
	f := storetest.New()
	f.Add(store.TableTeams,
		store.Row{"id": float64(1), "abbreviation": "buf"},
		store.Row{"id": float64(3), "abbreviation": "KC"},
		store.Row{"id": float64(9), "abbreviation": "Mia"},
	)
	return f
}

func TestAbbreviationsByID(t *testing.T) {
	f := teamFixture()
	r := NewTeamRepository(f)

	got, err := r.AbbreviationsByID(context.Background(), []int{1, 9})
	if err != nil {
		t.Fatalf("AbbreviationsByID: %v", err)
	}
	want := map[int]string{1: "BUF", 9: "MIA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("abbreviations = %v, want %v", got, want)
	}
}

func TestAbbreviationsByIDEmptySetSkipsFetch(t *testing.T) {
	f := teamFixture()
	r := NewTeamRepository(f)

	got, err := r.AbbreviationsByID(context.Background(), nil)
	if err != nil {
		t.Fatalf("AbbreviationsByID: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty map", got)
	}
	if n := f.SelectsFor(store.TableTeams); n != 0 {
		t.Errorf("issued %d fetches for empty id set, want 0", n)
	}
}

func TestIDByAbbreviation(t *testing.T) {
	r := NewTeamRepository(teamFixture())

	id, found, err := r.IDByAbbreviation(context.Background(), "KC")
	if err != nil {
		t.Fatalf("IDByAbbreviation: %v", err)
	}
	if !found || id != 3 {
		t.Errorf("got (%d, %v), want (3, true)", id, found)
	}

	_, found, err = r.IDByAbbreviation(context.Background(), "XXX")
	if err != nil {
		t.Fatalf("IDByAbbreviation unknown: %v", err)
	}
	if found {
		t.Error("unknown abbreviation reported found")
	}
}

func TestAbbreviations(t *testing.T) {
	r := NewTeamRepository(teamFixture())

	got, err := r.Abbreviations(context.Background())
	if err != nil {
		t.Fatalf("Abbreviations: %v", err)
	}
	want := []string{"KC", "Mia", "buf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("abbreviations = %v, want %v", got, want)
	}
}

func TestTeamCount(t *testing.T) {
	r := NewTeamRepository(teamFixture())

	n, err := r.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}
