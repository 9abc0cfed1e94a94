package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LeJamon/namedvec"
	"github.com/LeJamon/namedvec/internal/config"
)

// loadDataset reads name/value lines from path ("-" means stdin) into a
// vector. Blank lines and lines starting with '#' are skipped. The input
// is parsed, never stored: the vector holds the records in memory only.
func loadDataset(path string, cfg *config.Config) (*namedvec.Vector[string], error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		defer f.Close()
		r = f
	}

	vec := namedvec.New[string]()
	if cfg.Reserve > 0 {
		vec.Reserve(cfg.Reserve)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, cfg.Delimiter)
		if !found {
			return nil, fmt.Errorf("line %d: missing delimiter %q", lineNo, cfg.Delimiter)
		}
		vec.Push(strings.TrimSpace(value), strings.TrimSpace(name))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return vec, nil
}
