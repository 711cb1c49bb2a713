package main

import (
	"flag"
	"log"
	"os"

	"apsearch/pkg/config"
	"apsearch/pkg/engine"
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
	consumer := stream.NewArrayConsumer[parser.Doc]()
	if err := parser.ParseDirDocs(files, opts, consumer); err != nil {
		log.Fatalf("failed to parse collection: %v\n", err)
	}

	ix, err := index.Build(stream.NewArrayProducer(consumer.Collect()))
	if err != nil {
		log.Fatalf("failed to build index: %v\n", err)
	}
	log.Printf("Indexed %d docs, %d terms.\n", ix.DocumentCount(), ix.TermCount())

	queries, err := os.Open(cfg.Queries)
	if err != nil {
		log.Fatalf("failed to open queries file: %v\n", err)
	}
	defer queries.Close()

	results, err := sys.CreateFile(cfg.Results)
	if err != nil {
		log.Fatalf("failed to create results file: %v\n", err)
	}
	defer results.Close()

	ng := engine.NewEngine(ix, cfg.CacheSize)
	if err := ng.RunBatch(queries, results); err != nil {
		log.Fatalf("failed to run query batch: %v\n", err)
	}
}
