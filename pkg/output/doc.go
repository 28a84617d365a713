// Package output renders command results for the terminal.
//
// A Renderer is either coloured, using lipgloss styles from the styles
// package, pterm status badges and glamour for markdown, or plain, in
// which case every method writes undecorated text. Colour is chosen by
// ColorEnabled: it is off for --no-color, when NO_COLOR is set, and when
// the writer is not a terminal.
package output
