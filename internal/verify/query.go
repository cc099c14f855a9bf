package verify

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pyverify/internal/smtlib"
)

// BuildQuery serializes the rewritten document into dir, a path distinct
// from the source artifact so the original stays available for audit.
func BuildQuery(doc *smtlib.Document, dir string) (string, error) {
	queryPath := filepath.Join(dir, "verify.smt")
	if err := os.WriteFile(queryPath, doc.Serialize(), 0o644); err != nil {
		return "", errors.Wrap(err, "write query")
	}
	return queryPath, nil
}
