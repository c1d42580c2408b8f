package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
)

// Build-time variables set via -ldflags.
//
// Example build command:
//
//	go build -ldflags="-X github.com/agbru/int2023/internal/app.Version=v1.2.3 -X github.com/agbru/int2023/internal/app.Commit=abc123" ./cmd/generate-golden
var (
	// Version is the semantic version of the application (e.g., "v1.0.0").
	Version = "dev"
	// Commit is the short Git commit hash (e.g., "abc123").
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build (e.g., "2025-01-01T00:00:00Z").
	BuildDate = "unknown"
)

var versionColor = color.New(color.FgGreen, color.Bold)

// HasVersionFlag checks if any argument is a version flag, so that -version
// works in any position.
//
// Parameters:
//   - args: The command-line arguments to check (typically os.Args[1:]).
//
// Returns:
//   - bool: True if a version flag is found, false otherwise.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion outputs version information to the given writer.
//
// Parameters:
//   - out: The writer to output version information to.
//   - program: The command name printed on the first line.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintf(out, "%s %s\n", program, versionColor.Sprint(Version))
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
