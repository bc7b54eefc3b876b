// Package main implements arkilian-epk, a debugging tool that computes the
// effective partition key a document would route under, without contacting
// the server.
//
// Usage:
//
//	arkilian-epk -definition container.yaml -doc document.json
//	arkilian-epk -definition container.yaml doc1.json doc2.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arkilian/arkilian-go/internal/document"
	"github.com/arkilian/arkilian-go/pkg/types"
)

// Config holds the tool configuration.
type Config struct {
	DefinitionPath string
	DocPaths       []string
	Verbose        bool
}

func main() {
	cfg := parseFlags()

	def, err := loadDefinition(cfg.DefinitionPath)
	if err != nil {
		log.Fatalf("Failed to load partition key definition: %v", err)
	}
	if err := def.Validate(); err != nil {
		log.Fatalf("Invalid partition key definition: %v", err)
	}

	if cfg.Verbose {
		log.Printf("Definition: version=%s paths=%v", def.Version, def.Paths)
	}

	exit := 0
	for _, path := range cfg.DocPaths {
		if err := printKey(path, def, cfg.Verbose); err != nil {
			log.Printf("%s: %v", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.DefinitionPath, "definition", "", "Path to the partition key definition YAML file")
	var doc string
	flag.StringVar(&doc, "doc", "", "Path to a JSON document (may also be given as positional arguments)")
	flag.BoolVar(&cfg.Verbose, "v", false, "Print extracted components alongside the key")
	flag.Parse()

	if cfg.DefinitionPath == "" {
		fmt.Fprintln(os.Stderr, "arkilian-epk: -definition is required")
		flag.Usage()
		os.Exit(2)
	}
	if doc != "" {
		cfg.DocPaths = append(cfg.DocPaths, doc)
	}
	cfg.DocPaths = append(cfg.DocPaths, flag.Args()...)
	if len(cfg.DocPaths) == 0 {
		fmt.Fprintln(os.Stderr, "arkilian-epk: at least one document is required")
		flag.Usage()
		os.Exit(2)
	}
	return cfg
}

// loadDefinition reads a partition key definition from a YAML file, e.g.:
//
//	paths:
//	  - /tenantId
//	  - /userId
//	version: 2
func loadDefinition(path string) (types.PartitionKeyDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PartitionKeyDefinition{}, fmt.Errorf("read %s: %w", path, err)
	}
	var def types.PartitionKeyDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return types.PartitionKeyDefinition{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return def, nil
}

func printKey(docPath string, def types.PartitionKeyDefinition, verbose bool) error {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	if verbose {
		components, err := document.Extract(doc, def)
		if err != nil {
			return err
		}
		for i, c := range components {
			log.Printf("%s: %s = %s", docPath, def.Paths[i], c)
		}
	}

	key, err := document.ExtractKey(doc, def)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", docPath, key)
	return nil
}
