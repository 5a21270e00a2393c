package diagram

import (
	"errors"
	"testing"
)

func TestAlignVertical(t *testing.T) {
	ds := []*Diagram{Rectangle(2, 2), Rectangle(4, 2).Translate(V2(10, 5))}
	tests := []struct {
		align Alignment
		minX  float64
	}{
		{AlignLeft, -1},
		{AlignCenter, -2},
		{AlignRight, -3},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			d, err := AlignVertical(ds, tt.align)
			if err != nil {
				t.Fatal(err)
			}
			box := d.Child(1).BoundingBox()
			if box.Min.X != tt.minX || box.Min.Y != 4 {
				t.Errorf("second box = %v, want min (%v, 4)", box, tt.minX)
			}
			if !d.Child(0).Equal(ds[0]) {
				t.Error("first diagram moved")
			}
		})
	}
}

func TestAlignHorizontal(t *testing.T) {
	ds := []*Diagram{Square(2), Square(4).Translate(V2(5, 7))}
	tests := []struct {
		align Alignment
		minY  float64
	}{
		{AlignBottom, -1},
		{AlignCenter, -2},
		{AlignTop, -3},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			d, err := AlignHorizontal(ds, tt.align)
			if err != nil {
				t.Fatal(err)
			}
			box := d.Child(1).BoundingBox()
			if box.Min.Y != tt.minY || box.Min.X != 3 {
				t.Errorf("second box = %v, want min (3, %v)", box, tt.minY)
			}
		})
	}
}

func TestAlignRejectsCrossAxis(t *testing.T) {
	if _, err := AlignVertical([]*Diagram{Square(1)}, AlignTop); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("AlignVertical(top) error = %v", err)
	}
	if _, err := AlignHorizontal([]*Diagram{Square(1)}, AlignLeft); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("AlignHorizontal(left) error = %v", err)
	}
	d, err := AlignVertical(nil, AlignCenter)
	if err != nil || d.NumChildren() != 0 {
		t.Errorf("AlignVertical(nil) = %v, %v", d, err)
	}
}

func TestParseAlignment(t *testing.T) {
	for _, a := range []Alignment{AlignCenter, AlignLeft, AlignRight, AlignTop, AlignBottom} {
		got, err := ParseAlignment(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAlignment("middle"); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("ParseAlignment(middle) error = %v", err)
	}
}

func TestDistribute(t *testing.T) {
	ds := []*Diagram{Square(2), Square(2), Square(2)}

	row := DistributeHorizontal(ds, 1)
	for i, wantMin := range []float64{-1, 2, 5} {
		if got := row.Child(i).BoundingBox().Min.X; got != wantMin {
			t.Errorf("row child %d min x = %v, want %v", i, got, wantMin)
		}
	}

	col := DistributeVertical(ds, 1)
	for i, wantMax := range []float64{1, -2, -5} {
		if got := col.Child(i).BoundingBox().Max.Y; got != wantMax {
			t.Errorf("column child %d max y = %v, want %v", i, got, wantMax)
		}
	}

	if DistributeHorizontal(nil, 1).NumChildren() != 0 {
		t.Error("DistributeHorizontal(nil) is not empty")
	}
}

func TestDistributeAndAlign(t *testing.T) {
	d, err := DistributeHorizontalAndAlign([]*Diagram{Square(2), Square(4)}, 0.5, AlignBottom)
	if err != nil {
		t.Fatal(err)
	}
	box := d.Child(1).BoundingBox()
	if box != (Rect{Min: V2(1.5, -1), Max: V2(5.5, 3)}) {
		t.Errorf("second box = %v", box)
	}

	d, err = DistributeVerticalAndAlign([]*Diagram{Square(2), Square(4)}, 0.5, AlignLeft)
	if err != nil {
		t.Fatal(err)
	}
	box = d.Child(1).BoundingBox()
	if box != (Rect{Min: V2(-1, -5.5), Max: V2(3, -1.5)}) {
		t.Errorf("second box = %v", box)
	}
}
