package index

import (
	"cmp"

	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
)

// TermFreq is a term with its document frequency (posting list length).
type TermFreq struct {
	Term    string
	DocFreq int
}

// TopTerms returns the k terms with the highest document frequency,
// ties broken by term ascending.
func (ix *Index) TopTerms(k int) []TermFreq {
	return ix.rankTerms(k, func(a, b TermFreq) int {
		if a.DocFreq != b.DocFreq {
			return cmp.Compare(b.DocFreq, a.DocFreq)
		}
		return cmp.Compare(a.Term, b.Term)
	})
}

// RareTerms returns the k terms with the lowest document frequency,
// ties broken by term ascending.
func (ix *Index) RareTerms(k int) []TermFreq {
	return ix.rankTerms(k, func(a, b TermFreq) int {
		if a.DocFreq != b.DocFreq {
			return cmp.Compare(a.DocFreq, b.DocFreq)
		}
		return cmp.Compare(a.Term, b.Term)
	})
}

func (ix *Index) rankTerms(k int, comparator func(a, b TermFreq) int) []TermFreq {
	q := pq.NewWith(comparator)
	for term, postings := range ix.postings {
		q.Enqueue(TermFreq{
			Term:    term,
			DocFreq: len(postings),
		})
	}

	list := make([]TermFreq, 0, k)
	for len(list) < k {
		tf, ok := q.Dequeue()
		if !ok {
			break
		}
		list = append(list, tf)
	}
	return list
}
