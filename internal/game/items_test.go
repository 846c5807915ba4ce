package game

import "testing"

func TestItemField_TakeRemovesOnce(t *testing.T) {
	a := Tile{Row: 1, Col: 1}
	b := Tile{Row: 1, Col: 2}
	f := NewItemField([]Tile{a}, []Tile{b})

	if !f.TakePellet(a) {
		t.Fatal("first take should succeed")
	}
	if f.TakePellet(a) {
		t.Fatal("second take of the same tile must fail")
	}
	if f.TakePellet(b) {
		t.Fatal("power tile must not satisfy a pellet take")
	}
	if !f.TakePower(b) {
		t.Fatal("power take should succeed")
	}
}

func TestItemField_EmptyAndRefill(t *testing.T) {
	a := Tile{Row: 1, Col: 1}
	b := Tile{Row: 1, Col: 2}
	f := NewItemField([]Tile{a}, []Tile{b})

	if f.Empty() {
		t.Fatal("fresh field is not empty")
	}
	f.TakePellet(a)
	if f.Empty() {
		t.Fatal("field with a power pellet left is not empty")
	}
	f.TakePower(b)
	if !f.Empty() {
		t.Fatal("field should be empty after both takes")
	}

	f.Refill()
	if !f.HasPellet(a) || !f.HasPower(b) {
		t.Fatal("refill must restore the original full contents")
	}
	pellets, powers := f.Remaining()
	if pellets != 1 || powers != 1 {
		t.Fatalf("remaining after refill: %d/%d", pellets, powers)
	}
}
