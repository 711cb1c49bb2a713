package parser

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
)

// ErrMalformedDocument means a record is missing its DOCNO field.
// Construction cannot continue past it: an index with a hole in its
// id table is worse than no index.
var ErrMalformedDocument = errors.New("document record has no DOCNO")

// Doc is one parsed document record: the DOCNO it declares and the
// contents of its TEXT blocks joined with a single space.
type Doc struct {
	DocNo string
	Text  string
}

func (doc *Doc) Print() {
	fmt.Printf("%s: %s\n", doc.DocNo, doc.Text)
}

// ParseRecords extracts every <DOC> record from one collection file,
// keeping in-file order. The markup is TREC/AP style:
//
//	<DOC>
//	<DOCNO> AP890101-0001 </DOCNO>
//	<TEXT> ... </TEXT>
//	</DOC>
//
// The lenient html parser handles the unknown tags; record fields are
// picked out of the resulting node tree.
func ParseRecords(content string) ([]Doc, error) {
	root, err := xhtml.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	docs := []Doc{}
	var crawl func(node *xhtml.Node) error
	crawl = func(node *xhtml.Node) error {
		if node.Type == xhtml.ElementNode && node.Data == "doc" {
			doc, err := parseRecord(node)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if err := crawl(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := crawl(root); err != nil {
		return nil, err
	}

	return docs, nil
}

func parseRecord(node *xhtml.Node) (Doc, error) {
	var doc Doc

	blocks := []string{}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode {
			continue
		}
		switch c.Data {
		case "docno":
			doc.DocNo = strings.TrimSpace(nodeText(c))
		case "text":
			blocks = append(blocks, strings.TrimSpace(Sanitize(innerMarkup(c))))
		}
	}

	if doc.DocNo == "" {
		return doc, ErrMalformedDocument
	}
	doc.Text = strings.Join(blocks, " ")

	return doc, nil
}

func nodeText(node *xhtml.Node) string {
	var sb strings.Builder
	var collect func(n *xhtml.Node)
	collect = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(node)
	return sb.String()
}

func innerMarkup(node *xhtml.Node) string {
	var sb strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		xhtml.Render(&sb, c)
	}
	return sb.String()
}

// Sanitize strips markup left inside a text block and unescapes HTML
// entities. Tokenization (case folding, splitting) belongs to the
// index builder, so the text is otherwise untouched.
func Sanitize(s string) string {
	p := bluemonday.StripTagsPolicy()
	content := p.Sanitize(s)
	return html.UnescapeString(content)
}
