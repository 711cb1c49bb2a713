package main

import (
	"flag"
	"fmt"
	"log"
	"path"
	"time"

	"apsearch/pkg/config"
	"apsearch/pkg/index"
	"apsearch/pkg/parser"
	"apsearch/pkg/utils/stream"
	"apsearch/pkg/utils/sys"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to run configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v\n", err)
	}

	files, err := parser.ReadFiles(cfg.Collection)
	if err != nil {
		log.Fatalf("failed to read collection files: %v\n", err)
	}

	opts := parser.Options{
		Workers:       cfg.Workers,
		NearDupFilter: cfg.Dedup,
	}

	start := time.Now()
	docCh := make(chan parser.Doc)
	go func() {
		defer close(docCh)
		if err := parser.ParseDirDocs(files, opts, stream.NewChannelConsumer(docCh)); err != nil {
			log.Fatalf("failed to parse collection: %v\n", err)
		}
	}()

	ix, err := index.Build(stream.NewChannelProducer(docCh))
	if err != nil {
		log.Fatalf("failed to build index: %v\n", err)
	}

	log.Printf("Docs: %d. Terms: %d. Time: %v.\n", ix.DocumentCount(), ix.TermCount(), time.Since(start))
	sys.LogMemoryUsage()

	if err := sys.CreateDir(cfg.ReportDir); err != nil {
		log.Fatalf("failed to create report dir: %v\n", err)
	}
	writeReport(path.Join(cfg.ReportDir, "frequent_terms.txt"), ix.TopTerms(cfg.TopK))
	writeReport(path.Join(cfg.ReportDir, "rare_terms.txt"), ix.RareTerms(cfg.TopK))
}

func writeReport(filename string, terms []index.TermFreq) {
	f, err := sys.CreateFile(filename)
	if err != nil {
		log.Fatalf("failed to create report file: %v\n", err)
	}
	defer f.Close()

	for _, tf := range terms {
		fmt.Fprintf(f, "%s: %d\n", tf.Term, tf.DocFreq)
	}
}
