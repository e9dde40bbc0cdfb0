package tui

import (
	"reflect"
	"testing"
)

func TestResolveSimpleRow(t *testing.T) {
	root := Row(Length(10),
		Leaf("a", Length(4)),
		Leaf("b", Flex()),
	)
	rects := Resolve(root, NewRect(0, 0, 10, 5))
	wantA := NewRect(0, 0, 4, 5)
	wantB := NewRect(4, 0, 6, 5)
	if rects["a"] != wantA {
		t.Errorf("a = %v, want %v", rects["a"], wantA)
	}
	if rects["b"] != wantB {
		t.Errorf("b = %v, want %v", rects["b"], wantB)
	}
}

func TestResolveNestedColumn(t *testing.T) {
	root := Column(Length(10),
		Leaf("header", Length(1)),
		Row(Flex(),
			Leaf("sidebar", Length(3)),
			Leaf("main", Flex()),
		),
	)
	rects := Resolve(root, NewRect(0, 0, 10, 10))
	if rects["header"] != NewRect(0, 0, 10, 1) {
		t.Errorf("header = %v", rects["header"])
	}
	if rects["sidebar"] != NewRect(0, 1, 3, 9) {
		t.Errorf("sidebar = %v", rects["sidebar"])
	}
	if rects["main"] != NewRect(3, 1, 7, 9) {
		t.Errorf("main = %v", rects["main"])
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	root := Row(Length(20), Leaf("a", Ratio(1)), Leaf("b", Ratio(2)))
	rect := NewRect(1, 1, 20, 8)
	first := Resolve(root, rect)
	second := Resolve(root, rect)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolving twice produced different maps: %v vs %v", first, second)
	}
}

func TestResolveNilRoot(t *testing.T) {
	rects := Resolve(nil, NewRect(0, 0, 10, 10))
	if len(rects) != 0 {
		t.Errorf("expected empty map for nil root, got %v", rects)
	}
}
