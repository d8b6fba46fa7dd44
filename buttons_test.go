package cursor

import "testing"

func TestButtonDetectorEdges(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    []Edge
	}{
		{"press and hold", []float64{0, 1, 1, 1}, []Edge{EdgeNone, EdgeDown, EdgeNone, EdgeNone}},
		{"click", []float64{1, 0}, []Edge{EdgeDown, EdgeUp}},
		{"analog", []float64{0.2, 0.9, 0, -0.5}, []Edge{EdgeDown, EdgeNone, EdgeUp, EdgeNone}},
		{"idle", []float64{0, 0, 0}, []Edge{EdgeNone, EdgeNone, EdgeNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ButtonDetector
			for i, v := range tt.samples {
				if got := d.Sample(v); got != tt.want[i] {
					t.Errorf("sample %d (%v) = %v, want %v", i, v, got, tt.want[i])
				}
			}
		})
	}
}

func TestButtonDetectorPressed(t *testing.T) {
	var d ButtonDetector
	if d.Pressed() {
		t.Fatal("zero detector should be released")
	}
	d.Sample(1)
	if !d.Pressed() {
		t.Error("should be pressed after positive sample")
	}
	d.Sample(0)
	if d.Pressed() {
		t.Error("should be released after zero sample")
	}
}
