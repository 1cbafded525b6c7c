// Package display renders ccwrapped results for the terminal.
//
// Every printer takes an io.Writer and an explicit color switch so output can
// be captured in tests. Callers normally pass ColorEnabled(w), which is true
// only for a standard stream attached to a TTY with NO_COLOR unset.
//
//	report, err := gen.Generate(ctx)
//	if errors.Is(err, wrapped.ErrNoData) {
//	    display.NoDataWarning(claudeDir).Display(os.Stderr)
//	    return err
//	}
//	display.PrintSummary(os.Stdout, report, display.ColorEnabled(os.Stdout))
package display
