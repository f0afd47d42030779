// Package match selects the operation of an API description that best fits a
// free-text question and turns it into a concrete request.
package match

import (
	"sort"
	"strings"

	"github.com/jakenesler/askapi/openapi"
)

// Candidate is a scored operation.
type Candidate struct {
	Path      string
	Method    string
	Operation *openapi.Operation
	Score     int
}

// Tokens lower-cases the question and splits it on whitespace.
func Tokens(question string) []string {
	return strings.Fields(strings.ToLower(question))
}

// Score returns the highest scoring operation for question. Ties go to the
// operation seen first, paths then methods in document order. An empty
// question scores every operation 0, so the first operation wins.
// The boolean is false only when the description has no operations.
func Score(desc *openapi.Description, question string) (Candidate, bool) {
	tokens := Tokens(question)

	var best Candidate
	found := false
	desc.Walk(func(path string, op *openapi.Operation) bool {
		c := Candidate{
			Path:      path,
			Method:    op.Method,
			Operation: op,
			Score:     scoreTokens(tokens, haystack(path, op)),
		}
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
		return true
	})
	return best, found
}

// Rank scores every operation and orders them best first, keeping document
// order among equal scores. Rank(d, q)[0] is the candidate Score picks.
func Rank(desc *openapi.Description, question string) []Candidate {
	tokens := Tokens(question)

	var all []Candidate
	desc.Walk(func(path string, op *openapi.Operation) bool {
		all = append(all, Candidate{
			Path:      path,
			Method:    op.Method,
			Operation: op,
			Score:     scoreTokens(tokens, haystack(path, op)),
		})
		return true
	})
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	return all
}

func haystack(path string, op *openapi.Operation) string {
	return strings.ToLower(path + " " + op.Method + " " + op.Summary + " " + op.Description)
}

// scoreTokens counts tokens found in text. A token repeated in the question
// counts once per repetition.
func scoreTokens(tokens []string, text string) int {
	n := 0
	for _, t := range tokens {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}
