package main

import (
	"flag"
	"log"

	"apsearch/pkg/config"
	"apsearch/pkg/parser"
	"apsearch/pkg/utils/stream"
)

// Debug aid: parse the collection and print the first few records.
func main() {
	configPath := flag.String("config", "config.yaml", "path to run configuration")
	count := flag.Int("n", 5, "number of parsed docs to print")
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

	docs := consumer.Collect()
	if len(docs) == 0 {
		log.Fatal("no documents parsed")
	}

	for i := 0; i < min(*count, len(docs)); i++ {
		docs[i].Print()
	}
}
