// Package examples serves the built-in inspiration designs.
package examples

//go:generate mockgen -source=examples.go -destination=examplesmock/examples_mock.go -package=examplesmock

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var _catalogYAML []byte

// Module is the Fx module for this package.
var Module = fx.Provide(New)

const _errIndexOutOfRange = "%w: index %d, the catalog holds %d"

// Catalog lists the inspiration examples that can be loaded as new projects.
type Catalog interface {
	// List returns a copy of every example in display order.
	List() []entity.Example
	// Get returns the example at index.
	Get(index int) (entity.Example, error)
}

type catalog struct {
	examples []entity.Example
}

// New parses the embedded catalog.
func New() (Catalog, error) {
	examples, err := Parse(bytes.NewReader(_catalogYAML))
	if err != nil {
		return nil, fmt.Errorf("loading example catalog: %w", err)
	}
	return &catalog{examples: examples}, nil
}

// Parse decodes a YAML list of examples. Every entry needs a prompt and markup that starts with a tag.
func Parse(r io.Reader) (examples []entity.Example, err error) {
	if e := yaml.NewDecoder(r).Decode(&examples); e != nil {
		return nil, e
	}
	for i, ex := range examples {
		if strings.TrimSpace(ex.Prompt) == "" {
			err = multierr.Append(err, fmt.Errorf("example %d: empty prompt", i))
		}
		if !strings.HasPrefix(strings.TrimSpace(ex.HTMLCode), "<") {
			err = multierr.Append(err, fmt.Errorf("example %d: markup must start with a tag", i))
		}
	}
	if err != nil {
		return nil, err
	}
	return examples, nil
}

func (c *catalog) List() []entity.Example {
	return append([]entity.Example(nil), c.examples...)
}

func (c *catalog) Get(index int) (entity.Example, error) {
	if index < 0 || index >= len(c.examples) {
		return entity.Example{}, fmt.Errorf(_errIndexOutOfRange, errors.UnknownExampleError, index, len(c.examples))
	}
	return c.examples[index], nil
}
