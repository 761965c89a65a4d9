package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRectF(0, 0, 10, 10),
			b:    NewRectF(5, 5, 10, 10),
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    NewRectF(0, 0, 10, 10),
			b:    NewRectF(10, 0, 10, 10),
			want: false,
		},
		{
			name: "completely separate",
			a:    NewRectF(0, 0, 5, 5),
			b:    NewRectF(100, 100, 5, 5),
			want: false,
		},
		{
			name: "contained",
			a:    NewRectF(0, 0, 100, 100),
			b:    NewRectF(40, 40, 10, 10),
			want: true,
		},
		{
			name: "vertical miss",
			a:    NewRectF(0, 0, 10, 10),
			b:    NewRectF(0, 20, 10, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFInset(t *testing.T) {
	r := NewRectF(10, 20, 30, 40).Inset(4)

	if r.X != 14 || r.Y != 24 {
		t.Errorf("Inset position = (%g, %g), want (14, 24)", r.X, r.Y)
	}
	if r.W != 22 || r.H != 32 {
		t.Errorf("Inset size = %gx%g, want 22x32", r.W, r.H)
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %g, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %g, want 60", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5, 0, 10) = %g, want 5", got)
	}
	if got := ClampF(-5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5, 0, 10) = %g, want 0", got)
	}
	if got := ClampF(15, 0, 10); got != 10 {
		t.Errorf("ClampF(15, 0, 10) = %g, want 10", got)
	}
}
