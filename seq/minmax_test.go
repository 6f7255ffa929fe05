package seq_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-underscore-utils/seq"
)

func TestMax(t *testing.T) {
	v, err := seq.Max(ints(3, 9, 1, 7))
	if err != nil {
		t.Fatal(err)
	}
	if v != 9 {
		t.Fatalf("Max = %d; want 9", v)
	}
}

func TestMin(t *testing.T) {
	v, err := seq.Min(ints(3, 9, 1, 7))
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("Min = %d; want 1", v)
	}
}

func TestMinMaxSingleElement(t *testing.T) {
	if v, err := seq.Max(ints(5)); err != nil || v != 5 {
		t.Fatalf("Max single = %v, %v", v, err)
	}
	if v, err := seq.Min(ints(5)); err != nil || v != 5 {
		t.Fatalf("Min single = %v, %v", v, err)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	if _, err := seq.Max(seq.Empty[int]()); !errors.Is(err, seq.ErrEmptySequence) {
		t.Fatalf("Max on empty: err = %v; want ErrEmptySequence", err)
	}
	if _, err := seq.Min(seq.Empty[int]()); !errors.Is(err, seq.ErrEmptySequence) {
		t.Fatalf("Min on empty: err = %v; want ErrEmptySequence", err)
	}
}

func TestMaxByTiesKeepEarlier(t *testing.T) {
	type entry struct {
		score int
		name  string
	}
	c := seq.New(entry{9, "first"}, entry{3, "mid"}, entry{9, "second"})

	got, err := seq.MaxBy(c, func(e entry) int { return e.score })
	if err != nil {
		t.Fatal(err)
	}
	if got.name != "first" {
		t.Fatalf("MaxBy tie = %v; want the earlier element", got)
	}
}

func TestMinByTiesKeepEarlier(t *testing.T) {
	type entry struct {
		score int
		name  string
	}
	c := seq.New(entry{3, "mid"}, entry{1, "first"}, entry{1, "second"})

	got, err := seq.MinBy(c, func(e entry) int { return e.score })
	if err != nil {
		t.Fatal(err)
	}
	if got.name != "first" {
		t.Fatalf("MinBy tie = %v; want the earlier element", got)
	}
}
