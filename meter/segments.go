package meter

// DefaultSegmentThresholds returns the percent thresholds of the classic
// six-segment bar, bottom to top.
func DefaultSegmentThresholds() []float64 {
	return []float64{2, 6, 12, 25, 45, 70}
}

// Segments returns how many bar segments are lit for percent.
//
// The lowest segment needs a level strictly above thresholds[0] so that a
// floor-level band stays dark. Every further segment k lights once percent
// reaches thresholds[k]. Thresholds must ascend.
func Segments(percent float64, thresholds []float64) int {
	if len(thresholds) == 0 || !(percent > thresholds[0]) {
		return 0
	}

	lit := 1
	for _, th := range thresholds[1:] {
		if percent < th {
			break
		}
		lit++
	}

	return lit
}
