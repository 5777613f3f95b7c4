// Package viz renders gravity systems in the terminal.
//
// The package provides:
//
//   - [Model]: Bubble Tea live view that advances a system and draws it
//   - [Canvas]: braille dot canvas used by the live view
//   - [Camera]: rotatable projection of body positions onto the canvas
//   - [Plot] and [PlotRun]: asciigraph charts of a finished run
//   - lipgloss styles and [BodyCard] for command output
//
// # Key Bindings
//
//	Space - Pause/Resume
//	.     - Single step
//	T     - Cycle color themes
//	x/X   - Rotate about the x axis
//	y/Y   - Rotate about the y axis
//	+/-   - Zoom
package viz
