package verify

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a solver run unless the caller overrides it.
const DefaultTimeout = 60 * time.Second

// Solve runs the decision procedure as `<binary> <queryPath>` and captures
// its combined output. The subprocess is killed when the budget expires and
// the run fails with TimeoutError. A non-zero exit whose output still
// carries a result token is returned for classification; z3 uses non-zero
// exits for some answers. Only a tokenless failure becomes ProcessError.
func Solve(ctx context.Context, binary, queryPath string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Debugf("running %s %s (budget %s)", binary, queryPath, timeout)
	out, err := exec.CommandContext(runCtx, binary, queryPath).CombinedOutput()
	output := string(out)
	if runCtx.Err() == context.DeadlineExceeded {
		return "", &TimeoutError{Limit: timeout}
	}
	if err != nil && !hasResultToken(output) {
		return "", &ProcessError{Output: strings.TrimSpace(output), Err: err}
	}
	return output, nil
}

func hasResultToken(output string) bool {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "sat", "unsat", "unknown":
			return true
		}
	}
	return false
}
