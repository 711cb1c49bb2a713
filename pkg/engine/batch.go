package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// RunBatch evaluates one query per line from r and writes one result
// line per query to w: the matching DOCNOs joined by spaces. Traces go
// to the log. A malformed query is logged and skipped; it never aborts
// the batch. Blank lines are ignored.
func (ng *Engine) RunBatch(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		log.Printf("Original query: %s\n", line)
		result, err := ng.Evaluate(line)
		if err != nil {
			if errors.Is(err, ErrMalformedQuery) {
				log.Printf("Skipping query: %v\n", err)
				continue
			}
			return err
		}
		log.Printf("Final executed query: %s\n", result.Trace)

		if _, err := fmt.Fprintln(w, strings.Join(result.Docs, " ")); err != nil {
			return err
		}
	}
	return scanner.Err()
}
