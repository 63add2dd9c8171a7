// Package subtitle maps translated sentence pairs back onto ASR word
// timestamps and shapes the result into renderable subtitle segments: a
// cursor-based aligner, gap optimization, display-length splitting, and
// SRT/VTT rendering.
package subtitle
