// Package config holds the run configuration shared by the commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is loaded from a YAML file; fields left out keep their
// defaults.
type Config struct {
	// Collection is the directory holding the tagged document files.
	Collection string `yaml:"collection"`
	// Queries is the file with one RPN boolean query per line.
	Queries string `yaml:"queries"`
	// Results is where the batch runner writes one line of DOCNOs per
	// query.
	Results string `yaml:"results"`
	// ReportDir receives the term frequency report files.
	ReportDir string `yaml:"report_dir"`
	// CacheSize bounds the query-result LRU cache.
	CacheSize int `yaml:"cache_size"`
	// Workers is the parse worker pool size; <= 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Dedup enables the simhash near-duplicate filter during parsing.
	Dedup bool `yaml:"dedup"`
	// TopK is the report size for frequent and rare terms.
	TopK int `yaml:"top_k"`
}

func Default() Config {
	return Config{
		Collection: "AP_Coll_Parsed",
		Queries:    "BooleanQueries.txt",
		Results:    "results.txt",
		ReportDir:  ".",
		CacheSize:  256,
		Workers:    4,
		TopK:       10,
	}
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
