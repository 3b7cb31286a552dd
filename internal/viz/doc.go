// Package viz provides the styled and interactive views of the ripple.
//
//   - [Theme]: lipgloss colour schemes applied to glyph lines
//   - [Model]: Bubble Tea live view sharing the frame transition
//   - [Plot]: asciigraph chart of one waveform cycle
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	Q     - Quit
package viz
