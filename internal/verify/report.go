package verify

import (
	"fmt"
	"strings"
)

// Report is the verification result handed back to the caller: the
// classified verdict plus the raw solver output for audit.
type Report struct {
	RequestID      string
	Verdict        Verdict
	RawOutput      string
	RewriteApplied bool
}

func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString("=== solver output ===\n")
	sb.WriteString(strings.TrimSpace(r.RawOutput))
	sb.WriteString("\n\n")
	switch r.Verdict {
	case VerdictVerified:
		sb.WriteString(colour(32, "=== VERIFICATION PASSED ===\n"))
	case VerdictCounterexample:
		sb.WriteString(colour(31, "=== VERIFICATION FAILED ===\n"))
	default:
		sb.WriteString(colour(33, "=== VERIFICATION INCONCLUSIVE ===\n"))
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n", r.Verdict, r.Verdict.Explain()))
	if !r.RewriteApplied {
		sb.WriteString("note: no precondition was applicable; the query ran unguarded\n")
	}
	return sb.String()
}

func colour(color int, str string) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, str)
}
