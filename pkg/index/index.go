package index

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDocument means an internal id fell outside
// [1, DocumentCount]. Ids are handed out densely during construction,
// so hitting this is an invariant violation in id bookkeeping, not a
// user error.
var ErrUnknownDocument = errors.New("unknown internal document id")

// Index is the frozen inverted index: term -> sorted duplicate-free
// posting list of internal ids, plus the internal id -> DOCNO table.
// It is read-only after construction and safe for concurrent readers.
type Index struct {
	docNos   []string
	postings map[string][]int
}

func (ix *Index) DocumentCount() int {
	return len(ix.docNos)
}

// OriginalID translates an internal id back to the DOCNO it was
// assigned from.
func (ix *Index) OriginalID(internal int) (string, error) {
	if internal < 1 || internal > len(ix.docNos) {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrUnknownDocument, internal, len(ix.docNos))
	}
	return ix.docNos[internal-1], nil
}

// Postings returns the posting list for term, in ascending internal id
// order. Unseen terms yield an empty list; absence is the common case
// in boolean retrieval, not an error. Callers must not mutate the
// returned slice.
func (ix *Index) Postings(term string) []int {
	return ix.postings[term]
}

// TermCount returns the number of distinct indexed terms.
func (ix *Index) TermCount() int {
	return len(ix.postings)
}

// Terms returns every indexed term in ascending order.
func (ix *Index) Terms() []string {
	terms := make([]string, 0, len(ix.postings))
	for term := range ix.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
