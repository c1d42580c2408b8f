// Package ui provides theme and color support for the application's user interface.
package ui

import "github.com/fatih/color"

// Color functions return ANSI escape codes from the current theme.
// These functions provide a simple API for consistent color usage across the application.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code from the current theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

var (
	passBadge = color.New(color.FgBlack, color.BgGreen, color.Bold)
	failBadge = color.New(color.FgWhite, color.BgRed, color.Bold)
	skipBadge = color.New(color.FgBlack, color.BgYellow)
)

// PassBadge renders a highlighted " PASS " label. It is plain text when
// colors are disabled.
func PassBadge() string { return passBadge.Sprint(" PASS ") }

// FailBadge renders a highlighted " FAIL " label.
func FailBadge() string { return failBadge.Sprint(" FAIL ") }

// SkipBadge renders a highlighted " SKIP " label.
func SkipBadge() string { return skipBadge.Sprint(" SKIP ") }
