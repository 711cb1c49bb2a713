package parser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/mfonda/simhash"

	"apsearch/pkg/utils/stream"
)

// ReadFiles lists the collection files in a flat directory, sorted by
// name so document discovery order is reproducible across runs.
func ReadFiles(srcDir string) ([]string, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(srcDir, entry.Name()))
	}
	sort.Strings(files)

	log.Printf("Collection files count: %d\n", len(files))

	return files, nil
}

type Options struct {
	// Workers <= 0 means one worker per CPU.
	Workers int
	// NearDupFilter drops documents whose text simhashes to a value
	// already seen.
	NearDupFilter bool
}

// ParseDirDocs parses every file with a pool of workers and hands the
// docs to consumer in file order, then record order within a file.
// Delivery order fixes internal id assignment downstream, so workers
// fill per-file slots instead of racing to the consumer.
func ParseDirDocs(files []string, opts Options, consumer stream.Consumer) error {
	workerNum := opts.Workers
	if workerNum <= 0 {
		workerNum = runtime.NumCPU()
	}

	type task struct {
		slot int
		file string
	}

	slots := make([][]Doc, len(files))
	errs := make([]error, len(files))
	taskCh := make(chan task)

	var wg sync.WaitGroup
	wg.Add(workerNum)
	for i := 0; i < workerNum; i++ {
		go func() {
			defer wg.Done()
			for t := range taskCh {
				slots[t.slot], errs[t.slot] = parseFile(t.file)
			}
		}()
	}

	start := time.Now()
	for i, file := range files {
		taskCh <- task{slot: i, file: file}
	}
	close(taskCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	dupMap := map[uint64]struct{}{}
	count := 0
	for _, docs := range slots {
		for _, doc := range docs {
			if opts.NearDupFilter {
				hash := simhash.Simhash(simhash.NewWordFeatureSet([]byte(doc.Text)))
				if _, ok := dupMap[hash]; ok {
					continue
				}
				dupMap[hash] = struct{}{}
			}
			consumer.Consume(doc)
			count++
		}
	}

	log.Printf(
		"Parse worker count: %d. Docs count: %d. Using %v\n",
		workerNum, count, time.Since(start))

	return nil
}

func parseFile(file string) ([]Doc, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file %s: %w", file, err)
	}

	docs, err := ParseRecords(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return docs, nil
}
