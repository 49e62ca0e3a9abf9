package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Run executes the mdfy command: convert cached article HTML matching
// cache/<dir|*>/*.html into mirrored Markdown files. Existing outputs are
// skipped unless forced. This is a pure post-processing pass over the
// cache; it performs no network operations.
func (c *MdfyCmd) Run(deps *Dependencies) error {
	paths, err := deps.Store.ListArtifacts(c.Dir)
	if err != nil {
		return err
	}

	converted := 0
	for _, path := range paths {
		mdPath := deps.Store.MarkdownPathFor(path)
		if !c.Force {
			if _, err := os.Stat(mdPath); err == nil {
				continue
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		markdown, err := deps.Converter.Convert(string(data))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", path, err)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(mdPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
			return err
		}
		converted++
	}

	fmt.Fprintf(deps.Stdout, "converted %d of %d cached articles\n", converted, len(paths))
	return nil
}
