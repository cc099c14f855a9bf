package verify

import (
	"bufio"
	"strings"
)

// Verdict is the classified outcome of a solver run.
type Verdict int

const (
	// VerdictVerified: the negated equivalence query is unsatisfiable, so
	// no counterexample exists under the precondition.
	VerdictVerified Verdict = iota
	// VerdictCounterexample: the query is satisfiable, so some input
	// within the precondition distinguishes the two implementations.
	VerdictCounterexample
	// VerdictInconclusive: the solver answered unknown or produced no
	// recognized result token.
	VerdictInconclusive
)

func (v Verdict) String() string {
	switch v {
	case VerdictVerified:
		return "Verified"
	case VerdictCounterexample:
		return "CounterexampleFound"
	default:
		return "Inconclusive"
	}
}

// Explain returns the one-line reading of the verdict.
func (v Verdict) Explain() string {
	switch v {
	case VerdictVerified:
		return "no counterexample exists - the implementation matches the spec"
	case VerdictCounterexample:
		return "counterexample found - the implementation differs from the spec"
	default:
		return "the solver could not decide within budget"
	}
}

// Classify maps raw solver output to a verdict. The result token is
// matched as a whole line: "unsat" contains "sat" as a substring, so any
// containment test ordered sat-first misreads every unsat answer.
func Classify(output string) Verdict {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "unsat":
			return VerdictVerified
		case "sat":
			return VerdictCounterexample
		case "unknown":
			return VerdictInconclusive
		}
	}
	return VerdictInconclusive
}
