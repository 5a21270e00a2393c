package diagram

import (
	"slices"
	"testing"
)

func TestCombine_OriginAndMutability(t *testing.T) {
	a := unitSquare().MoveOrigin(V2(1, 2))
	b := Text("b").Position(V2(9, 9))

	d := Combine(a, b)
	if d.Kind() != KindComposite || d.NumChildren() != 2 {
		t.Fatalf("Combine = %s with %d children", d.Kind(), d.NumChildren())
	}
	if d.Origin() != V2(1, 2) {
		t.Errorf("origin = %v, want first child's (1, 2)", d.Origin())
	}

	tests := []struct {
		name    string
		inputs  []*Diagram
		mutable bool
	}{
		{"all immutable", []*Diagram{unitSquare(), unitSquare()}, false},
		{"mixed", []*Diagram{unitSquare().Mut(), unitSquare()}, false},
		{"all mutable", []*Diagram{unitSquare().Mut(), Text("x").Mut()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.inputs...).IsMutable(); got != tt.mutable {
				t.Errorf("IsMutable() = %v, want %v", got, tt.mutable)
			}
		})
	}
}

func TestCombine_SharesOnlyMutableInputs(t *testing.T) {
	m := unitSquare().Mut()
	im := unitSquare()
	d := Combine(m, im)
	if d.Child(0) != m {
		t.Error("mutable input should be held by reference")
	}
	if d.Child(1) == im {
		t.Error("immutable input should be cloned")
	}

	m.Translate(V2(3, 0))
	if d.Child(0).Path().At(0) != V2(3, 0) {
		t.Error("edit of the shared mutable input is not visible through the group")
	}
}

func TestCombine_Empty(t *testing.T) {
	d := Combine()
	if d.Kind() != KindComposite || d.NumChildren() != 0 || d.Origin() != V2(0, 0) {
		t.Errorf("Combine() = %s, %d children, origin %v", d.Kind(), d.NumChildren(), d.Origin())
	}
	if !d.Equal(Empty()) {
		t.Error("Combine() differs from Empty()")
	}
}

func TestCombine_Method(t *testing.T) {
	d := unitSquare().Combine(Text("a"), Text("b"))
	if d.NumChildren() != 3 || d.Child(0).Kind() != KindPolygon {
		t.Errorf("Combine method = %d children, first %s", d.NumChildren(), d.Child(0).Kind())
	}
}

func TestDiagram_Flatten(t *testing.T) {
	leaves := []*Diagram{
		Text("a"),
		Text("b"),
		Text("c"),
		Text("d"),
		Text("e"),
	}
	d := Combine(leaves[0], Combine(leaves[1], Combine(leaves[2], leaves[3])), leaves[4])

	flat := d.Flatten()
	if flat.NumChildren() != 5 {
		t.Fatalf("Flatten() has %d children, want 5", flat.NumChildren())
	}
	var got []string
	for _, c := range flat.Children() {
		if c.Kind() == KindComposite {
			t.Fatal("Flatten() kept a composite child")
		}
		got = append(got, c.TextData().Text)
	}
	if want := []string{"a", "b", "c", "d", "e"}; !slices.Equal(got, want) {
		t.Errorf("Flatten() order = %v, want %v", got, want)
	}
	if d.NumChildren() != 3 {
		t.Error("Flatten modified the receiver")
	}

	leaf := unitSquare()
	if !leaf.Flatten().Equal(leaf) {
		t.Error("Flatten of a leaf should return it unchanged")
	}
}

func TestDiagram_Apply(t *testing.T) {
	d := unitSquare()
	got := d.Apply(func(n *Diagram) *Diagram { return n.Mut().Translate(V2(1, 0)) })
	if got.Path().At(0) != V2(1, 0) {
		t.Errorf("Apply result = %v", got.Path().Points())
	}
	if d.Path().At(0) != V2(0, 0) {
		t.Error("Apply modified the receiver through the clone")
	}
}

func TestDiagram_ApplyRecursive(t *testing.T) {
	d := sampleTree()
	visited := 0
	got := d.ApplyRecursive(func(n *Diagram) *Diagram {
		visited++
		if n.Kind() == KindCurve {
			return n.Stroke("blue")
		}
		return n
	})
	if visited != 6 {
		t.Errorf("visited %d nodes, want 6", visited)
	}
	curve := got.Child(1).Child(0)
	if s, _ := curve.Style().Stroke.Get(); s != "blue" {
		t.Errorf("curve stroke = %q, want blue", s)
	}
	if d.Child(1).Child(0).Style().Stroke.IsSet() {
		t.Error("ApplyRecursive modified the receiver")
	}
}

func TestDiagram_ApplyRecursiveSeesReplacements(t *testing.T) {
	d := Combine(unitSquare())
	var kinds []Kind
	d.ApplyRecursive(func(n *Diagram) *Diagram {
		kinds = append(kinds, n.Kind())
		if n.Kind() == KindComposite {
			return Combine(Text("replacement"))
		}
		return n
	})
	if want := []Kind{KindComposite, KindText}; !slices.Equal(kinds, want) {
		t.Errorf("visited %v, want %v", kinds, want)
	}
}

func TestDiagram_ApplyToTaggedRecursive(t *testing.T) {
	d := Combine(
		unitSquare().AppendTags("box", "hot"),
		unitSquare().AppendTags("box"),
		Combine(Curve(V2(0, 0), V2(1, 0)).AppendTags("hot", "box")),
	)
	got := d.ApplyToTaggedRecursive([]string{"box", "hot"}, func(n *Diagram) *Diagram {
		return n.Fill("red")
	})

	fills := []bool{
		got.Child(0).Style().Fill.IsSet(),
		got.Child(1).Style().Fill.IsSet(),
		got.Child(2).Child(0).Style().Fill.IsSet(),
	}
	if want := []bool{true, false, true}; !slices.Equal(fills, want) {
		t.Errorf("filled = %v, want %v", fills, want)
	}
}
