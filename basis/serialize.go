package basis

import (
	"errors"

	"github.com/katalvlaran/nbpoly/dictionary"
	"gopkg.in/yaml.v3"
)

// Persisted term layout:
//
//	bodyOrder: 3
//	tuples: [[1, 0, 0, 0], [0, 2, 0, 0]]
//	coefficients: [0.5, -1.25]
//	dictionary: [poly(3), "cos(4.5, 6.0)"]
//
// One-body terms persist with a null dictionary and deserialize by summing
// their coefficients into a single constant. A Term backed by a custom
// (symbol-less) Dictionary cannot be persisted: marshaling surfaces
// dictionary.ErrNotSerializable.
type termDoc struct {
	BodyOrder    int       `yaml:"bodyOrder"`
	Tuples       [][]int   `yaml:"tuples"`
	Coefficients []float64 `yaml:"coefficients"`
	Dictionary   []string  `yaml:"dictionary"`
}

var errDictionaryPair = errors.New("basis: dictionary field must be a [transform, cutoff] pair")

// MarshalYAML implements yaml.Marshaler for the persisted term format.
func (t *Term) MarshalYAML() (interface{}, error) {
	doc := termDoc{
		BodyOrder:    t.bodyOrder,
		Tuples:       make([][]int, len(t.tuples)),
		Coefficients: append([]float64(nil), t.coeffs...),
	}
	for i, tp := range t.tuples {
		doc.Tuples[i] = append([]int(nil), tp...)
	}

	if t.bodyOrder > 1 {
		tn, cn, err := t.dict.Names()
		if err != nil {
			return nil, err
		}
		doc.Dictionary = []string{tn, cn}
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler; the reconstructed Term passes
// through the same validation as New.
func (t *Term) UnmarshalYAML(node *yaml.Node) error {
	var doc termDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	if doc.BodyOrder == 1 {
		*t = *NewOneBody(sum(doc.Coefficients))

		return nil
	}

	if len(doc.Dictionary) != 2 {
		return errDictionaryPair
	}
	dict, err := dictionary.New(doc.Dictionary[0], doc.Dictionary[1])
	if err != nil {
		return err
	}

	tuples := make([]Tuple, len(doc.Tuples))
	for i, tp := range doc.Tuples {
		tuples[i] = Tuple(tp)
	}

	rebuilt, err := New(doc.BodyOrder, tuples, doc.Coefficients, dict)
	if err != nil {
		return err
	}
	*t = *rebuilt

	return nil
}
