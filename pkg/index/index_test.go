package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"apsearch/pkg/parser"
	"apsearch/pkg/utils/stream"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()

	docs := []parser.Doc{
		{DocNo: "AP890101-0001", Text: "africa africa Airlines travel"},
		{DocNo: "AP890101-0002", Text: "AFRICA safari"},
		{DocNo: "AP890102-0001", Text: "airlines cargo"},
		{DocNo: "AP890102-0002", Text: ""},
	}

	ix, err := Build(stream.NewArrayProducer(docs))
	require.NoError(t, err)
	return ix
}

func TestBuildAssignsDenseIDs(t *testing.T) {
	ix := buildTestIndex(t)

	require.Equal(t, 4, ix.DocumentCount())

	docNos := []string{"AP890101-0001", "AP890101-0002", "AP890102-0001", "AP890102-0002"}
	for i, docNo := range docNos {
		got, err := ix.OriginalID(i + 1)
		require.NoError(t, err)
		require.Equal(t, docNo, got)
	}

	_, err := ix.OriginalID(0)
	require.ErrorIs(t, err, ErrUnknownDocument)
	_, err = ix.OriginalID(5)
	require.ErrorIs(t, err, ErrUnknownDocument)
}

func TestBuildPostings(t *testing.T) {
	ix := buildTestIndex(t)

	// Case-folded, and the doubled "africa" in doc 1 contributes one
	// posting.
	require.Equal(t, []int{1, 2}, ix.Postings("africa"))
	require.Equal(t, []int{1, 3}, ix.Postings("airlines"))
	require.Equal(t, []int{2}, ix.Postings("safari"))

	// Unseen term is an empty posting list, not an error.
	require.Empty(t, ix.Postings("zebra"))

	// Query-side case variants are not folded here; the index stores
	// lower-cased terms only.
	require.Empty(t, ix.Postings("Africa"))
}

func TestBuildMalformedDocument(t *testing.T) {
	docs := []parser.Doc{
		{DocNo: "AP890101-0001", Text: "africa"},
		{DocNo: "", Text: "orphan text"},
	}

	_, err := Build(stream.NewArrayProducer(docs))
	require.ErrorIs(t, err, parser.ErrMalformedDocument)
}

func TestBuilderPostingsStaySorted(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 50; i++ {
		doc := parser.Doc{DocNo: "D", Text: "common"}
		if i%3 == 0 {
			doc.Text = "common sparse"
		}
		require.NoError(t, b.Add(doc))
	}
	ix := b.Index()

	for _, term := range []string{"common", "sparse"} {
		postings := ix.Postings(term)
		for i := 1; i < len(postings); i++ {
			require.Less(t, postings[i-1], postings[i])
		}
	}
	require.Len(t, ix.Postings("common"), 50)
}

func TestTermRanking(t *testing.T) {
	ix := buildTestIndex(t)

	top := ix.TopTerms(2)
	require.Equal(t, []TermFreq{
		{Term: "africa", DocFreq: 2},
		{Term: "airlines", DocFreq: 2},
	}, top)

	rare := ix.RareTerms(2)
	require.Equal(t, []TermFreq{
		{Term: "cargo", DocFreq: 1},
		{Term: "safari", DocFreq: 1},
	}, rare)

	// Asking for more terms than exist returns them all.
	require.Len(t, ix.TopTerms(100), ix.TermCount())
}
