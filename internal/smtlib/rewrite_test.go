package smtlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(src)
	require.NoError(t, err)
	return doc
}

func TestPreconditions(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	pres := Preconditions(doc)
	assert.Len(t, pres, 1)
	assert.Equal(t, "digits-pre", pres[0].Name)
	assert.Equal(t, []Param{{Name: "n", Sort: "Int"}}, pres[0].Params)
}

func TestPreconditionsOrderAndArity(t *testing.T) {
	doc := mustParse(t, `(define-fun b-pre ((x Int) (y (_ BitVec 32))) Bool true)
(define-fun a-pre () Bool false)
(define-fun helper ((x Int)) Int x)
`)
	pres := Preconditions(doc)
	assert.Len(t, pres, 2)
	// document order, not name order
	assert.Equal(t, "b-pre", pres[0].Name)
	assert.Equal(t, "a-pre", pres[1].Name)
	assert.Equal(t, []Param{{Name: "x", Sort: "Int"}, {Name: "y", Sort: "(_ BitVec 32)"}}, pres[0].Params)
	assert.Empty(t, pres[1].Params)
}

func TestPreconditionsEmpty(t *testing.T) {
	doc := mustParse(t, "(declare-const n Int)\n(assert (> n 0))\n(check-sat)")
	assert.Empty(t, Preconditions(doc))
}

func TestRewriteSingleParam(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	rewritten, applied := Rewrite(doc, Preconditions(doc))
	assert.True(t, applied)
	assert.Equal(t,
		"(assert (and (digits-pre n) (not (= (correct n) (buggy n)))))",
		rewritten.Forms[5].Raw)

	// the source document is untouched
	assert.Equal(t, "(assert (not (= (correct n) (buggy n))))", doc.Forms[5].Raw)

	// the rewritten document is still valid SMT-LIB
	_, err := Parse(string(rewritten.Serialize()))
	assert.NoError(t, err)
}

func TestRewriteMultiParamKeepsArgumentOrder(t *testing.T) {
	doc := mustParse(t, `(define-fun gcd-pre ((a Int) (b Int)) Bool (and (> a 0) (> b 0)))
(declare-const a Int)
(declare-const b Int)
(assert (not (= (correct a b) (buggy a b))))
`)
	rewritten, applied := Rewrite(doc, Preconditions(doc))
	assert.True(t, applied)
	assert.Equal(t,
		"(assert (and (gcd-pre a b) (not (= (correct a b) (buggy a b)))))",
		rewritten.Forms[3].Raw)
}

func TestRewriteNoPrecondition(t *testing.T) {
	doc := mustParse(t, "(declare-const n Int)\n(assert (not (= (f n) (g n))))\n(check-sat)\n")
	rewritten, applied := Rewrite(doc, nil)
	assert.False(t, applied)
	assert.Equal(t, string(doc.Serialize()), string(rewritten.Serialize()))
}

func TestRewriteNoEquivalenceAssertion(t *testing.T) {
	var testCases = []struct {
		Name      string
		Assertion string
	}{
		{"plain inequality", "(assert (> n 0))"},
		{"equality without negation", "(assert (= (f n) (g n)))"},
		{"same symbol both sides", "(assert (not (= (f n) (f n))))"},
		{"different argument lists", "(assert (not (= (f n) (g m))))"},
		{"different arity", "(assert (not (= (f n) (g n m))))"},
	}
	for _, tc := range testCases {
		doc := mustParse(t, "(define-fun p-pre ((n Int)) Bool true)\n(declare-const n Int)\n(declare-const m Int)\n"+tc.Assertion)
		rewritten, applied := Rewrite(doc, Preconditions(doc))
		assert.False(t, applied, tc.Name)
		assert.Equal(t, string(doc.Serialize()), string(rewritten.Serialize()), tc.Name)
	}
}

func TestRewriteSelectionPolicy(t *testing.T) {
	// first matching assertion and first precondition, both in document order
	doc := mustParse(t, `(define-fun one-pre ((n Int)) Bool (> n 0))
(define-fun two-pre ((n Int)) Bool (< n 9))
(declare-const n Int)
(assert (> n 5))
(assert (not (= (correct n) (buggy n))))
(assert (not (= (other n) (another n))))
`)
	rewritten, applied := Rewrite(doc, Preconditions(doc))
	assert.True(t, applied)
	assert.Equal(t, "(assert (> n 5))", rewritten.Forms[3].Raw)
	assert.Equal(t,
		"(assert (and (one-pre n) (not (= (correct n) (buggy n)))))",
		rewritten.Forms[4].Raw)
	assert.Equal(t, "(assert (not (= (other n) (another n))))", rewritten.Forms[5].Raw)
}

func TestRewriteNullaryApplications(t *testing.T) {
	doc := mustParse(t, `(define-fun always-pre () Bool true)
(declare-const x Int)
(assert (not (= lhs rhs)))
`)
	rewritten, applied := Rewrite(doc, Preconditions(doc))
	assert.True(t, applied)
	assert.Equal(t, "(assert (and always-pre (not (= lhs rhs))))", rewritten.Forms[2].Raw)
}
