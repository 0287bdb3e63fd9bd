// Package recipe decodes the recipe field of drink requests.
//
// Clients may send either a single component object or a list of them. Both are
// normalized to a model.Recipe before anything else looks at them.
package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"droscher.com/Barista/pkg/model"
)

var (
	ErrMalformedRecipe = errors.New("malformed recipe")
	ErrMissingField    = errors.New("missing field")
)

type component struct {
	Color *string  `json:"color"`
	Name  *string  `json:"name"`
	Parts *float64 `json:"parts"`
}

// payload holds exactly one of single or many.
type payload struct {
	single *component
	many   []*component
}

func (p *payload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty value", ErrMalformedRecipe)
	}

	switch trimmed[0] {
	case '{':
		p.single = &component{}

		return json.Unmarshal(trimmed, p.single)
	case '[':
		p.many = []*component{}

		return json.Unmarshal(trimmed, &p.many)
	default:
		return fmt.Errorf("%w: expected an object or a list", ErrMalformedRecipe)
	}
}

func (p *payload) components() []*component {
	if p.single != nil {
		return []*component{p.single}
	}

	return p.many
}

func (c *component) ingredient(index int) (model.Ingredient, error) {
	var err error

	if c == nil {
		return model.Ingredient{}, fmt.Errorf("component %d: %w: color, name, parts", index, ErrMissingField)
	}

	if c.Color == nil {
		err = multierr.Append(err, fmt.Errorf("component %d: %w: color", index, ErrMissingField))
	}

	if c.Name == nil {
		err = multierr.Append(err, fmt.Errorf("component %d: %w: name", index, ErrMissingField))
	}

	if c.Parts == nil {
		err = multierr.Append(err, fmt.Errorf("component %d: %w: parts", index, ErrMissingField))
	}

	if err != nil {
		return model.Ingredient{}, err
	}

	return model.Ingredient{Color: *c.Color, Name: *c.Name, Parts: *c.Parts}, nil
}

// Parse normalizes the raw JSON value of a recipe field. Every failure wraps
// ErrMalformedRecipe.
func Parse(raw json.RawMessage) (model.Recipe, error) {
	var p payload

	if err := json.Unmarshal(raw, &p); err != nil {
		if errors.Is(err, ErrMalformedRecipe) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformedRecipe, err)
	}

	components := p.components()
	result := make(model.Recipe, 0, len(components))

	var errs error

	for index, c := range components {
		ingredient, err := c.ingredient(index)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		result = append(result, ingredient)
	}

	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecipe, errs)
	}

	return result, nil
}
