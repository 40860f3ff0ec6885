package entity

import (
	"reflect"
	"testing"
)

func TestStringSetAdd(t *testing.T) {
	set := NewStringSet()

	if !set.Add("doc.pdf") {
		t.Error("first Add should report newly added")
	}
	if set.Add("doc.pdf") {
		t.Error("second Add of same value should report already present")
	}
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
}

func TestStringSetContains(t *testing.T) {
	set := NewStringSet("a.pdf", "b.txt")

	if !set.Contains("a.pdf") {
		t.Error("Contains should find a.pdf")
	}
	if set.Contains("c.png") {
		t.Error("Contains should not find c.png")
	}
}

func TestStringSetValuesSorted(t *testing.T) {
	set := NewStringSet("zebra.txt", "alpha.pdf", "mango.png")

	got := set.Values()
	want := []string{"alpha.pdf", "mango.png", "zebra.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestStringSetDuplicateSeed(t *testing.T) {
	set := NewStringSet("x", "x", "y")

	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}
