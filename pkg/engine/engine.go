package engine

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"apsearch/pkg/index"
)

// ErrMalformedQuery means the RPN operand/operator arity did not work
// out: an operator found too few operands mid-scan, or end-of-scan
// left more on the stack than an implicit final AND can absorb.
var ErrMalformedQuery = errors.New("malformed boolean query")

// Result is one evaluated query: the matching DOCNOs in ascending
// internal-id order, and the fully parenthesized expression that was
// actually computed (diagnostic trace).
type Result struct {
	Query string
	Trace string
	Docs  []string
}

// operand pairs a posting list with the display string describing how
// it was computed. Pushing and popping them together keeps the trace
// in lockstep with the values.
type operand struct {
	postings []int
	expr     string
}

// Engine evaluates RPN boolean queries against a frozen index. The
// index never changes, so results are cached by normalized query text.
type Engine struct {
	index *index.Index
	cache *lru.Cache[string, Result]
}

func NewEngine(ix *index.Index, cacheSize int) *Engine {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, _ := lru.New[string, Result](cacheSize)
	return &Engine{
		index: ix,
		cache: cache,
	}
}

// Evaluate runs one query line: whitespace-separated RPN tokens over
// AND, OR, NOT and term operands, all case-insensitive.
func (ng *Engine) Evaluate(query string) (Result, error) {
	tokens := Tokenize(query)
	key := normalize(tokens)

	if result, ok := ng.cache.Get(key); ok {
		result.Query = query
		return result, nil
	}

	result, err := ng.evaluate(tokens)
	if err != nil {
		return Result{}, fmt.Errorf("%q: %w", query, err)
	}
	result.Query = query

	ng.cache.Add(key, result)
	return result, nil
}

func (ng *Engine) evaluate(tokens []Token) (Result, error) {
	// One term and no operators: the answer is that term's posting
	// list, no stack machine needed.
	if len(tokens) == 1 && tokens[0].Kind == TokenTerm {
		term := tokens[0].Term
		docs, err := ng.originalIDs(ng.index.Postings(term))
		if err != nil {
			return Result{}, err
		}
		return Result{Trace: term, Docs: docs}, nil
	}

	stack := []operand{}
	pop := func() (operand, bool) {
		if len(stack) == 0 {
			return operand{}, false
		}
		op := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return op, true
	}

	for _, token := range tokens {
		switch token.Kind {
		case TokenTerm:
			stack = append(stack, operand{
				postings: ng.index.Postings(token.Term),
				expr:     token.Term,
			})

		case TokenNot:
			a, ok := pop()
			if !ok {
				return Result{}, fmt.Errorf("%w: NOT needs one operand", ErrMalformedQuery)
			}
			stack = append(stack, operand{
				postings: index.Complement(a.postings, ng.index.DocumentCount()),
				expr:     "(NOT " + a.expr + ")",
			})

		case TokenAnd, TokenOr:
			// Right operand was pushed last, so it pops first.
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return Result{}, fmt.Errorf("%w: %s needs two operands", ErrMalformedQuery, token.display())
			}

			var merged []int
			if token.Kind == TokenAnd {
				merged = index.Intersect(a.postings, b.postings)
			} else {
				merged = index.Union(a.postings, b.postings)
			}
			stack = append(stack, operand{
				postings: merged,
				expr:     "(" + a.expr + " " + token.display() + " " + b.expr + ")",
			})
		}
	}

	var final operand
	switch len(stack) {
	case 1:
		final = stack[0]
	case 2:
		// Two operands and no closing operator is a common malformed
		// shape; tolerate it by intersecting them as a final AND.
		a, b := stack[0], stack[1]
		final = operand{
			postings: index.Intersect(a.postings, b.postings),
			expr:     "(" + a.expr + " AND " + b.expr + ")",
		}
	default:
		return Result{}, fmt.Errorf("%w: %d operands left at end of scan", ErrMalformedQuery, len(stack))
	}

	docs, err := ng.originalIDs(final.postings)
	if err != nil {
		return Result{}, err
	}
	return Result{Trace: final.expr, Docs: docs}, nil
}

func (ng *Engine) originalIDs(postings []int) ([]string, error) {
	docs := make([]string, 0, len(postings))
	for _, id := range postings {
		docNo, err := ng.index.OriginalID(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, docNo)
	}
	return docs, nil
}

// normalize rebuilds a canonical form of the query so cache hits do
// not depend on spacing or operator case.
func normalize(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts = append(parts, token.display())
	}
	return strings.Join(parts, " ")
}
