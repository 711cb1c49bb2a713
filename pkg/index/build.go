package index

import (
	"fmt"
	"strings"

	"apsearch/pkg/parser"
	"apsearch/pkg/utils/stream"
)

// Builder accumulates documents into an index under construction. The
// next-internal-id counter lives here and is discarded once the index
// is frozen.
type Builder struct {
	docNos   []string
	postings map[string][]int
	nextID   int
}

func NewBuilder() *Builder {
	return &Builder{
		postings: map[string][]int{},
		nextID:   1,
	}
}

// Add indexes one parsed document. Internal ids are handed out in call
// order, so every posting list grows in strictly increasing id order
// and stays sorted and duplicate-free without a sorting pass. That
// structural invariant is what the merge algorithms rely on.
func (b *Builder) Add(doc parser.Doc) error {
	if doc.DocNo == "" {
		return fmt.Errorf("%w: record %d", parser.ErrMalformedDocument, b.nextID)
	}

	id := b.nextID
	b.nextID++
	b.docNos = append(b.docNos, doc.DocNo)

	for _, term := range distinctTerms(doc.Text) {
		b.postings[term] = append(b.postings[term], id)
	}

	return nil
}

// Index freezes the accumulated state. The builder must not be used
// afterwards.
func (b *Builder) Index() *Index {
	return &Index{
		docNos:   b.docNos,
		postings: b.postings,
	}
}

// Build consumes parsed docs from producer until it is exhausted and
// returns the frozen index. A malformed document aborts the whole
// build; a partial index is never returned.
func Build(producer stream.Producer) (*Index, error) {
	b := NewBuilder()
	for {
		v, ok := producer.Produce()
		if !ok {
			break
		}
		if err := b.Add(v.(parser.Doc)); err != nil {
			return nil, err
		}
	}
	return b.Index(), nil
}

// distinctTerms lower-cases the text and splits it on whitespace,
// collapsing repeats: a term occurring k times in one document
// contributes a single posting.
func distinctTerms(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	seen := make(map[string]struct{}, len(fields))
	terms := []string{}
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		terms = append(terms, field)
	}
	return terms
}
