package postprocess

// FilterByScore retains exactly the results whose score meets the
// threshold (Score >= threshold; the comparison is inclusive, so a
// detection scoring exactly at the threshold survives). Order is
// preserved and the input slice is left untouched.
//
// Arguments:
//   - results: Candidate detections in any order.
//   - threshold: Minimum confidence score to survive.
//
// Returns:
//   - A fresh slice with the surviving detections.
func FilterByScore(results []Result, threshold float32) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Score >= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
