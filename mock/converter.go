package mock

import "github.com/jtorra/blogscrap"

var _ blogscrap.Converter = (*Converter)(nil)

// Converter is a mock implementation of blogscrap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
