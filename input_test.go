package folio

import "testing"

func TestPointerFromScreen(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		want   PointerSignal
	}{
		{"center", 400, 300, PointerSignal{}},
		{"top-left", 0, 0, PointerSignal{X: -1, Y: 1}},
		{"bottom-right", 800, 600, PointerSignal{X: 1, Y: -1}},
		{"quarter", 600, 150, PointerSignal{X: 0.5, Y: 0.5}},
		{"outside", -50, 900, PointerSignal{X: -1, Y: -1}},
	}
	for _, tt := range tests {
		got := PointerFromScreen(tt.sx, tt.sy, 800, 600)
		if !approxEqual(got.X, tt.want.X, epsilon) || !approxEqual(got.Y, tt.want.Y, epsilon) {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestPointerFromScreenDegenerate(t *testing.T) {
	if got := PointerFromScreen(10, 10, 0, 600); got != (PointerSignal{}) {
		t.Errorf("got %+v, want neutral", got)
	}
}

func TestInputSignalsTakeSection(t *testing.T) {
	var in InputSignals
	if _, ok := in.takeSection(); ok {
		t.Fatal("zero InputSignals has a pending section")
	}
	in.request(2)
	in.request(3)
	i, ok := in.takeSection()
	if !ok || i != 3 {
		t.Errorf("takeSection = (%d, %v), want (3, true)", i, ok)
	}
	if _, ok := in.takeSection(); ok {
		t.Error("request was not consumed")
	}
}
