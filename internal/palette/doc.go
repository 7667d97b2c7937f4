// Package palette provides the color cycle used to tint typed lines.
//
// A [Cycle] is a fixed, non-empty ordered list of colors; [Cycle.ColorFor]
// maps a monotonically increasing counter onto it by wrapping around:
//
//	cycle, _ := palette.Get("classic")
//	cycle.ColorFor(0) == cycle.ColorFor(uint64(cycle.Len()))
//
// A [Painter] turns a chunk of text and a color into styled terminal output,
// either as a single foreground color or as a gradient between two colors.
package palette
