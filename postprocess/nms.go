package postprocess

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-nms/images"
)

// ApplyNMS filters overlapping detections using class-wise greedy
// Non-Maximum Suppression: boxes suppress each other only within their
// own class, never across classes, regardless of overlap.
//
// Classes are processed in ascending index order and each class's
// candidates are stable-sorted by descending score, so the output is
// fully deterministic: grouped by ascending class, and within each
// class in acceptance order (descending confidence). A candidate is
// suppressed only when its maximum IoU against the boxes already kept
// for its class strictly exceeds iouThreshold — an overlap exactly at
// the threshold survives.
//
// Arguments:
//   - results: Filtered detections in any order.
//   - iouThreshold: Overlap above which a lower-confidence same-class
//     box is suppressed. 0 suppresses on any overlap at all; 1 or above
//     suppresses nothing.
//
// Returns:
//   - Filtered slice of detections. An empty input yields an empty
//     slice.
func ApplyNMS(results []Result, iouThreshold float32) []Result {
	final := make([]Result, 0, len(results))

	for _, class := range distinctClasses(results) {
		candidates := sortedByClass(results, class)

		kept := make([]Result, 0, len(candidates))
		for _, candidate := range candidates {
			maxIoU := float32(0)
			for _, kb := range kept {
				maxIoU = math32.Max(maxIoU, images.CalculateIoU(candidate.Box, kb.Box))
			}
			if maxIoU <= iouThreshold {
				kept = append(kept, candidate)
			}
		}
		final = append(final, kept...)
	}

	return final
}

// distinctClasses returns the distinct class indices present in the
// results, in ascending order for a deterministic processing sequence.
func distinctClasses(results []Result) []int {
	seen := make(map[int]struct{}, len(results))
	for _, r := range results {
		seen[r.Class] = struct{}{}
	}

	classes := make([]int, 0, len(seen))
	for class := range seen {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	return classes
}

// sortedByClass selects the results of one class and stable-sorts them
// by descending score; exact score ties keep their input order.
func sortedByClass(results []Result, class int) []Result {
	candidates := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Class == class {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
