package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/c-bata/go-prompt"

	"apsearch/pkg/config"
	"apsearch/pkg/engine"
	"apsearch/pkg/index"
	"apsearch/pkg/parser"
	"apsearch/pkg/utils/stream"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to run configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v\n", err)
	}

	log.Println("Engine initialization started...")

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
	ng := engine.NewEngine(ix, cfg.CacheSize)

	log.Printf("Engine initialization completed: %d docs, %d terms.\n", ix.DocumentCount(), ix.TermCount())

	suggests := []prompt.Suggest{
		{Text: "AND", Description: "intersect the two previous operands"},
		{Text: "OR", Description: "union the two previous operands"},
		{Text: "NOT", Description: "complement the previous operand"},
	}
	for _, term := range ix.Terms() {
		suggests = append(suggests, prompt.Suggest{Text: term})
	}

	completer := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if word == "" {
			return nil
		}
		return prompt.FilterHasPrefix(suggests, word, true)
	}

	executor := func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}

		result, err := ng.Evaluate(line)
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println("Executed:", result.Trace)
		if len(result.Docs) == 0 {
			fmt.Println("No matching documents.")
			return
		}
		fmt.Println(strings.Join(result.Docs, " "))
	}

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("query> "),
		prompt.OptionTitle("apsearch"),
	)
	p.Run()
}
