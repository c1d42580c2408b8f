package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/internal/config"
	"github.com/agbru/int2023/internal/ui"
	"github.com/agbru/int2023/pkg/int2023"
)

// PrintExecutionConfig displays the current execution configuration to the user.
//
// Parameters:
//   - cfg: The application configuration.
//   - cases: The number of cases that will be generated.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, cases int, out io.Writer) {
	ops := calculator.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating %s%s%s cases over %s%d%s-bit integers (operations: %v), seed %d.\n",
		ui.ColorBlue(), formatNumberString(fmt.Sprint(cases)), ui.ColorReset(),
		ui.ColorBlue(), int2023.Bits, ui.ColorReset(), names, cfg.Seed)
	fmt.Fprintf(out, "Timeout %s%s%s, verification %s.\n",
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset(), onOff(cfg.Verify))
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, %s%d%s workers, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), cfg.Concurrency, ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
