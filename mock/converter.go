package mock

import "github.com/fwojciec/spy"

var _ spy.Converter = (*Converter)(nil)

// Converter is a mock implementation of spy.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
