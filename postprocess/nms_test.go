package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-nms/images"
)

// TestFilterByScore verifies the inclusive threshold comparison and
// order preservation.
func TestFilterByScore(t *testing.T) {
	results := []Result{
		{Box: images.Box{CX: 0, CY: 0, W: 10, H: 10}, Score: 0.9, Class: 0},
		{Box: images.Box{CX: 5, CY: 5, W: 10, H: 10}, Score: 0.5, Class: 1},
		{Box: images.Box{CX: 9, CY: 9, W: 10, H: 10}, Score: 0.49, Class: 0},
	}

	tests := []struct {
		name      string
		threshold float32
		expected  []float32
	}{
		{
			name:      "all pass at zero threshold",
			threshold: 0,
			expected:  []float32{0.9, 0.5, 0.49},
		},
		{
			name:      "exact threshold is inclusive",
			threshold: 0.5,
			expected:  []float32{0.9, 0.5},
		},
		{
			name:      "all dropped above the maximum score",
			threshold: 0.95,
			expected:  []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByScore(results, tt.threshold)
			scores := make([]float32, 0, len(filtered))
			for _, r := range filtered {
				scores = append(scores, r.Score)
			}
			assert.Equal(t, tt.expected, scores,
				"surviving detections should keep their input order")
		})
	}
}

// TestFilterByScore_Monotonic verifies that raising the threshold never
// grows the surviving set.
func TestFilterByScore_Monotonic(t *testing.T) {
	results := []Result{
		{Score: 0.1}, {Score: 0.3}, {Score: 0.5}, {Score: 0.7}, {Score: 0.9},
	}

	prev := len(results) + 1
	for _, threshold := range []float32{0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		n := len(FilterByScore(results, threshold))
		assert.LessOrEqual(t, n, prev,
			"raising the threshold to %v should not grow the result set", threshold)
		prev = n
	}
}

// TestApplyNMS_Suppression verifies greedy suppression of overlapping
// same-class boxes, including the inclusive threshold boundary.
func TestApplyNMS_Suppression(t *testing.T) {
	// Geometry [0,0,10,10] vs [1,1,10,10]: intersection 9x9=81, union
	// 100+100-81=119, IoU ~0.6807.
	overlapA := images.Box{CX: 0, CY: 0, W: 10, H: 10}
	overlapB := images.Box{CX: 1, CY: 1, W: 10, H: 10}

	tests := []struct {
		name         string
		results      []Result
		iouThreshold float32
		expected     []Result
	}{
		{
			name: "lower confidence overlap is suppressed",
			results: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
				{Box: overlapB, Score: 0.6, Class: 0},
			},
			iouThreshold: 0.5,
			expected: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
			},
		},
		{
			name: "sorting happens before suppression regardless of input order",
			results: []Result{
				{Box: overlapB, Score: 0.6, Class: 0},
				{Box: overlapA, Score: 0.9, Class: 0},
			},
			iouThreshold: 0.5,
			expected: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
			},
		},
		{
			name: "overlap exactly at the threshold survives",
			results: []Result{
				// [0,0,10,10] vs [5,0,10,10]: intersection 5x10=50,
				// union 100+100-50=150, IoU exactly 1/3.
				{Box: images.Box{CX: 0, CY: 0, W: 10, H: 10}, Score: 0.9, Class: 0},
				{Box: images.Box{CX: 5, CY: 0, W: 10, H: 10}, Score: 0.6, Class: 0},
			},
			iouThreshold: float32(50) / float32(150),
			expected: []Result{
				{Box: images.Box{CX: 0, CY: 0, W: 10, H: 10}, Score: 0.9, Class: 0},
				{Box: images.Box{CX: 5, CY: 0, W: 10, H: 10}, Score: 0.6, Class: 0},
			},
		},
		{
			name: "zero threshold suppresses any overlap at all",
			results: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
				{Box: overlapB, Score: 0.6, Class: 0},
				// Disjoint from both kept boxes, survives.
				{Box: images.Box{CX: 100, CY: 100, W: 10, H: 10}, Score: 0.5, Class: 0},
			},
			iouThreshold: 0,
			expected: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
				{Box: images.Box{CX: 100, CY: 100, W: 10, H: 10}, Score: 0.5, Class: 0},
			},
		},
		{
			name: "threshold of one suppresses nothing",
			results: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
				{Box: overlapA, Score: 0.6, Class: 0}, // identical geometry, IoU 1.0
			},
			iouThreshold: 1,
			expected: []Result{
				{Box: overlapA, Score: 0.9, Class: 0},
				{Box: overlapA, Score: 0.6, Class: 0},
			},
		},
		{
			name:         "empty input yields empty output",
			results:      nil,
			iouThreshold: 0.5,
			expected:     []Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyNMS(tt.results, tt.iouThreshold))
		})
	}
}

// TestApplyNMS_ClassIsolation verifies that boxes of different classes
// never suppress each other, even with identical geometry.
func TestApplyNMS_ClassIsolation(t *testing.T) {
	box := images.Box{CX: 10, CY: 10, W: 4, H: 4}
	results := []Result{
		{Box: box, Score: 0.85, Class: 1},
		{Box: box, Score: 0.9, Class: 0},
	}

	final := ApplyNMS(results, 0.5)
	require.Len(t, final, 2, "identical boxes of different classes must both survive")

	// Output is grouped by ascending class.
	assert.Equal(t, 0, final[0].Class)
	assert.Equal(t, float32(0.9), final[0].Score)
	assert.Equal(t, 1, final[1].Class)
	assert.Equal(t, float32(0.85), final[1].Score)
}

// TestApplyNMS_Deterministic verifies the output ordering contract:
// ascending class groups, descending confidence within each group.
func TestApplyNMS_Deterministic(t *testing.T) {
	results := []Result{
		{Box: images.Box{CX: 100, CY: 100, W: 10, H: 10}, Score: 0.7, Class: 2},
		{Box: images.Box{CX: 0, CY: 0, W: 10, H: 10}, Score: 0.6, Class: 0},
		{Box: images.Box{CX: 200, CY: 200, W: 10, H: 10}, Score: 0.8, Class: 2},
		{Box: images.Box{CX: 50, CY: 50, W: 10, H: 10}, Score: 0.9, Class: 0},
	}

	final := ApplyNMS(results, 0.5)
	require.Len(t, final, 4, "no suppression expected between disjoint boxes")

	classes := make([]int, 0, len(final))
	scores := make([]float32, 0, len(final))
	for _, r := range final {
		classes = append(classes, r.Class)
		scores = append(scores, r.Score)
	}
	assert.Equal(t, []int{0, 0, 2, 2}, classes)
	assert.Equal(t, []float32{0.9, 0.6, 0.8, 0.7}, scores)
}

// TestFlatten verifies the uniform float row encoding at the boundary.
func TestFlatten(t *testing.T) {
	results := []Result{
		{Box: images.Box{CX: 10, CY: 20, W: 30, H: 40}, Score: 0.9, Class: 3},
		{Box: images.Box{CX: -5, CY: 0, W: 7, H: 9}, Score: 0.25, Class: 0},
	}

	assert.Equal(t, [][]float32{
		{10, 20, 30, 40, 0.9, 3},
		{-5, 0, 7, 9, 0.25, 0},
	}, Flatten(results))

	assert.Empty(t, Flatten(nil))
}

// BenchmarkApplyNMS measures suppression over a crowded single-class
// scene, the worst case for the pairwise IoU walk.
func BenchmarkApplyNMS(b *testing.B) {
	results := make([]Result, 0, 1000)
	for i := 0; i < 1000; i++ {
		results = append(results, Result{
			Box:   images.Box{CX: (i % 100) * 8, CY: (i / 100) * 8, W: 32, H: 32},
			Score: float32(i%97) / 97,
			Class: i % 4,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyNMS(results, 0.45)
	}
}
