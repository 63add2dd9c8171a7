package subtitle

// OptimizeGaps closes small silences between consecutive segments by
// extending a segment's end to the next segment's start when the gap is
// positive but below threshold. Ends are only ever extended, never shrunk,
// which makes the pass idempotent.
func OptimizeGaps(segments []Segment, threshold float64) []Segment {
	if len(segments) == 0 {
		return segments
	}

	out := make([]Segment, len(segments))
	copy(out, segments)

	for i := 0; i < len(out)-1; i++ {
		gap := out[i+1].Start - out[i].End
		if gap > 0 && gap < threshold {
			out[i].End = out[i+1].Start
			out[i].Duration = out[i].End - out[i].Start
		}
	}
	return out
}
