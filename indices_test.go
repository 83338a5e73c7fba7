package arc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendQuadIndices(t *testing.T) {
	tests := []struct {
		name  string
		quads int
		want  []uint16
	}{
		{"none", 0, nil},
		{"one", 1, []uint16{0, 1, 2, 0, 2, 3}},
		{"two", 2, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendQuadIndices(nil, tt.quads)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AppendQuadIndices(%d) mismatch (-want +got):\n%s", tt.quads, diff)
			}
		})
	}
}

func TestAppendQuadIndicesAppends(t *testing.T) {
	got := AppendQuadIndices([]uint16{9}, 1)
	if diff := cmp.Diff([]uint16{9, 0, 1, 2, 0, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendQuadIndicesLimit(t *testing.T) {
	got := AppendQuadIndices(nil, MaxIndexedQuads)
	if len(got) != MaxIndexedQuads*QuadIndexCount {
		t.Fatalf("len = %d, want %d", len(got), MaxIndexedQuads*QuadIndexCount)
	}
	if last := got[len(got)-1]; last != 65535 {
		t.Errorf("last index = %d, want 65535", last)
	}
	if first := got[len(got)-QuadIndexCount]; first != 65532 {
		t.Errorf("last quad base = %d, want 65532", first)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic past MaxIndexedQuads")
		}
	}()
	AppendQuadIndices(nil, MaxIndexedQuads+1)
}

func TestColorNormalized(t *testing.T) {
	got := Color{R: 255, G: 0, B: 51, A: 102}.Normalized()
	want := [4]float32{1, 0, 0.2, 0.4}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Normalized() mismatch (-want +got):\n%s", diff)
	}
}
