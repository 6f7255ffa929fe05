package record_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-underscore-utils/record"
	"github.com/hasbyte1/go-underscore-utils/seq"
)

func shapes() *seq.Sequence[record.Record] {
	return seq.New(
		record.Record{"color": "purple", "shape": "circle"},
		record.Record{"color": "red", "shape": "triangle"},
		record.Record{"color": "blue", "shape": "circle"},
	)
}

func TestWhere(t *testing.T) {
	got := record.Where(shapes(), record.Record{"shape": "circle"}).All()
	if len(got) != 2 {
		t.Fatalf("Where returned %d records; want 2", len(got))
	}
	// Original relative order preserved.
	if got[0]["color"] != "purple" || got[1]["color"] != "blue" {
		t.Fatalf("Where order = %v", got)
	}
}

func TestWhereNoMatches(t *testing.T) {
	got := record.Where(shapes(), record.Record{"shape": "hexagon"})
	if got.IsNotEmpty() {
		t.Fatalf("Where with no matches = %v; want empty", got)
	}
}

func TestWhereMultipleProperties(t *testing.T) {
	got := record.Where(shapes(), record.Record{"shape": "circle", "color": "blue"}).All()
	if len(got) != 1 || got[0]["color"] != "blue" {
		t.Fatalf("Where conjunctive = %v", got)
	}
}

func TestWhereLoose(t *testing.T) {
	c := seq.New(
		record.Record{"id": 1},
		record.Record{"id": 2},
	)
	got := record.WhereLoose(c, record.Record{"id": "2"}).All()
	if len(got) != 1 || got[0]["id"] != 2 {
		t.Fatalf("WhereLoose = %v", got)
	}
}

func TestFindWhere(t *testing.T) {
	r, ok := record.FindWhere(shapes(), record.Record{"shape": "circle"})
	if !ok || r["color"] != "purple" {
		t.Fatalf("FindWhere = %v, %v; want the first circle", r, ok)
	}
	if _, ok := record.FindWhere(shapes(), record.Record{"shape": "hexagon"}); ok {
		t.Fatal("FindWhere with no match should return false")
	}
}

func TestFindWhereOrFail(t *testing.T) {
	_, err := record.FindWhereOrFail(shapes(), record.Record{"shape": "hexagon"})
	if !errors.Is(err, seq.ErrNoMatchingItems) {
		t.Fatalf("err = %v; want seq.ErrNoMatchingItems", err)
	}
}

func TestPluck(t *testing.T) {
	got := record.Pluck(shapes(), "color").All()
	if len(got) != 3 || got[0] != "purple" || got[2] != "blue" {
		t.Fatalf("Pluck = %v", got)
	}
}

func TestPluckMissingKey(t *testing.T) {
	got := record.Pluck(shapes(), "weight")
	if got.Size() != shapes().Size() {
		t.Fatal("Pluck should preserve length even for missing keys")
	}
	if v, _ := got.Get(0); v != nil {
		t.Fatalf("missing key should pluck nil; got %v", v)
	}
}

func TestPluckString(t *testing.T) {
	c := seq.New(
		record.Record{"n": 1},
		record.Record{"n": "two"},
		record.Record{},
	)
	got := record.PluckString(c, "n").All()
	if got[0] != "1" || got[1] != "two" || got[2] != "" {
		t.Fatalf("PluckString = %v", got)
	}
}
