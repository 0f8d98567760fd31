package vmath

import "testing"

func TestTruncAndFrac(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int
	}{
		{"positive", FromFloat(7.75), 7},
		{"negative", FromFloat(-7.75), -7},
		{"whole", FromInt(3), 3},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trunc(tt.in); got != tt.want {
				t.Errorf("Trunc = %d, want %d", got, tt.want)
			}
			if f := Frac(tt.in); f < 0 || f >= Scale {
				t.Errorf("Frac = %d out of [0, Scale)", f)
			}
		})
	}
	if got := ToInt(FromFloat(-7.75)); got != -8 {
		t.Errorf("ToInt floors: got %d, want -8", got)
	}
	if got := Frac(FromFloat(-2.5)); got != Half {
		t.Errorf("Frac(-2.5) = %d, want Half", got)
	}
}

func TestMul(t *testing.T) {
	if got := ToFloat(Mul(FromFloat(1.5), FromFloat(-4))); got != -6 {
		t.Errorf("Mul = %v, want -6", got)
	}
	if got := ToFloat(Mul(FromFloat(-0.5), FromFloat(-0.5))); got != 0.25 {
		t.Errorf("Mul = %v, want 0.25", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ v, period, want int }{
		{0, 704, 0},
		{704, 704, 0},
		{705, 704, 1},
		{-1, 704, 703},
		{-704, 704, 0},
		{-1409, 704, 703},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.period); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.period, got, tt.want)
		}
	}
}

func TestWrapDelta(t *testing.T) {
	tests := []struct{ d, want int }{
		{0, 0},
		{10, 10},
		{-10, -10},
		{700, -4},
		{-700, 4},
		{352, -352},
		{-352, -352},
	}
	for _, tt := range tests {
		if got := WrapDelta(tt.d, 704); got != tt.want {
			t.Errorf("WrapDelta(%d) = %d, want %d", tt.d, got, tt.want)
		}
	}
	if got := WrapDelta(900, 0); got != 900 {
		t.Errorf("WrapDelta without period = %d, want 900", got)
	}
}

func TestFloorTo(t *testing.T) {
	tests := []struct{ v, want int }{
		{0, 0}, {63, 0}, {64, 64}, {130, 128}, {-1, -64}, {-64, -64},
	}
	for _, tt := range tests {
		if got := FloorTo(tt.v, 64); got != tt.want {
			t.Errorf("FloorTo(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
