package main

import (
	"fmt"
	"os"

	"github.com/jtorra/blogscrap/goquery"
)

// Run executes the clean command: re-apply the noise strip to cached
// artifacts matching cache/<dir|*>/*.html, rewriting them in place. Useful
// after the noise list grows, without re-fetching anything.
func (c *CleanCmd) Run(deps *Dependencies) error {
	paths, err := deps.Store.ListArtifacts(c.Dir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		cleaned, err := goquery.CleanArtifact(string(data))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", path, err)
			continue
		}

		if err := os.WriteFile(path, []byte(cleaned), 0644); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "cleaned %d cached articles\n", len(paths))
	return nil
}
