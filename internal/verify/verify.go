package verify

import (
	"context"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"pyverify/internal/smtlib"
)

// Verifier runs the verification pipeline: parse the exported document,
// guard the equivalence assertion with its precondition, hand the query to
// the external decision procedure and classify its answer. Each request is
// independent; concurrent requests never share artifacts because every
// query lives in a request-unique temp directory.
type Verifier struct {
	SolverBinary string
	Timeout      time.Duration
	Keep         bool
}

func NewVerifier(solverBinary string, timeout time.Duration) *Verifier {
	return &Verifier{
		SolverBinary: solverBinary,
		Timeout:      timeout,
	}
}

// VerifyFile runs the pipeline over an SMT-LIB document on disk.
func (v *Verifier) VerifyFile(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	return v.VerifyDocument(ctx, string(data))
}

// VerifyDocument runs the pipeline over raw SMT-LIB text.
func (v *Verifier) VerifyDocument(ctx context.Context, src string) (*Report, error) {
	requestID := uuid.NewString()

	doc, err := smtlib.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("request %s parsed document: %s", requestID, spew.Sdump(doc))
	}

	pres := smtlib.Preconditions(doc)
	rewritten, applied := smtlib.Rewrite(doc, pres)
	if applied {
		log.Infof("request %s: guarded equivalence assertion with %s", requestID, pres[0].Name)
	} else {
		log.Infof("request %s: no applicable precondition, query runs unguarded", requestID)
	}

	workdir, err := os.MkdirTemp("", "pyverify-query-"+requestID)
	if err != nil {
		return nil, errors.Wrap(err, "create workdir")
	}
	defer func() {
		if v.Keep {
			log.Infof("request %s: keeping artifacts in %s", requestID, workdir)
			return
		}
		if err := os.RemoveAll(workdir); err != nil {
			log.Warnf("request %s: cleanup of %s failed: %v", requestID, workdir, err)
		}
	}()

	queryPath, err := BuildQuery(rewritten, workdir)
	if err != nil {
		return nil, err
	}

	output, err := Solve(ctx, v.SolverBinary, queryPath, v.Timeout)
	if err != nil {
		return nil, err
	}

	return &Report{
		RequestID:      requestID,
		Verdict:        Classify(output),
		RawOutput:      output,
		RewriteApplied: applied,
	}, nil
}
