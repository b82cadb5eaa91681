// Command gen-types writes TypeScript declarations of the API models for the web UI.
//
//	go run ./src/cmd/gen-types -out web/src/api/models.ts
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/coder/guts"
	"github.com/coder/guts/config"

	"github.com/maksimkurb/quick-nav/src/internal/log"
)

const modelsPackage = "github.com/maksimkurb/quick-nav/src/internal/models"

func main() {
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	output, err := generate(modelsPackage)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *out == "" {
		if _, err := io.WriteString(os.Stdout, output); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	if err := writeFile(*out, output); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("TypeScript types written to %s", *out)
}

// generate returns the TypeScript declarations of every type in pkg.
func generate(pkg string) (string, error) {
	gen, err := guts.NewGolangParser()
	if err != nil {
		return "", fmt.Errorf("failed to create parser: %w", err)
	}

	if err := gen.IncludeGenerate(pkg); err != nil {
		return "", fmt.Errorf("failed to include %s: %w", pkg, err)
	}

	ts, err := gen.ToTypescript()
	if err != nil {
		return "", fmt.Errorf("failed to convert to TypeScript: %w", err)
	}

	ts.ApplyMutations(
		config.ExportTypes,
		config.ReadOnly,
	)

	output, err := ts.Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize: %w", err)
	}
	return output, nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
