package subtitle

// DisplayWeight estimates how much horizontal space text occupies. CJK
// ideographs, kana, and full-width forms count 1.75, Hangul 1.5, Thai and
// everything else 1.0.
func DisplayWeight(text string) float64 {
	weight := 0.0
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF, r >= 0x3040 && r <= 0x30FF:
			weight += 1.75
		case r >= 0xAC00 && r <= 0xD7A3, r >= 0x1100 && r <= 0x11FF:
			weight += 1.5
		case r >= 0x0E00 && r <= 0x0E7F:
			weight += 1.0
		case r >= 0xFF01 && r <= 0xFF5E:
			weight += 1.75
		default:
			weight += 1.0
		}
	}
	return weight
}
