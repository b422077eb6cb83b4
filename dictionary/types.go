package dictionary

import "errors"

var (
	// ErrUnknownSymbol is returned when a transform or cutoff name is not in
	// the registry.
	ErrUnknownSymbol = errors.New("dictionary: unknown transform or cutoff symbol")

	// ErrSymbolArgs is returned when a registry symbol carries the wrong
	// number of arguments, a malformed argument list, or parameter values
	// outside the family's domain (e.g. an inner radius past the outer one).
	ErrSymbolArgs = errors.New("dictionary: invalid symbol arguments")

	// ErrNotSerializable is returned when Names is called on a Dictionary
	// built from raw functions rather than registry symbols.
	ErrNotSerializable = errors.New("dictionary: dictionary has no symbolic form")
)

// ScalarFunc evaluates a scalar map R→R and its derivative at r.
type ScalarFunc func(r float64) (v, dv float64)

// Dictionary couples a distance re-parametrization with a cutoff envelope.
// It is immutable once constructed; basis terms share Dictionaries freely.
type Dictionary struct {
	transform ScalarFunc
	cutoff    ScalarFunc
	rcut      float64

	// symbolic provenance; empty for custom dictionaries
	transformName string
	cutoffName    string
}

// NewCustom wraps raw transform/cutoff functions. The result is fully
// usable for evaluation but has no symbolic form and cannot be serialized.
func NewCustom(transform, cutoff ScalarFunc, cutoffRadius float64) *Dictionary {
	return &Dictionary{transform: transform, cutoff: cutoff, rcut: cutoffRadius}
}

// Transform evaluates the distance re-parametrization t(r) and t'(r).
func (d *Dictionary) Transform(r float64) (v, dv float64) {
	return d.transform(r)
}

// Cutoff evaluates the envelope fc(r) and fc'(r). The envelope is identically
// zero for r ≥ CutoffRadius.
func (d *Dictionary) Cutoff(r float64) (v, dv float64) {
	return d.cutoff(r)
}

// CutoffRadius reports the radius beyond which the envelope vanishes.
func (d *Dictionary) CutoffRadius() float64 { return d.rcut }

// Serializable reports whether the Dictionary carries symbolic provenance.
func (d *Dictionary) Serializable() bool { return d.transformName != "" }

// Names returns the exact (transform, cutoff) symbol pair the Dictionary
// was constructed from. A custom Dictionary yields ErrNotSerializable.
func (d *Dictionary) Names() (transform, cutoff string, err error) {
	if !d.Serializable() {
		return "", "", ErrNotSerializable
	}

	return d.transformName, d.cutoffName, nil
}

// Compatible reports whether two Dictionaries may back the same basis term:
// either the same instance, or both symbolic with equal canonical names.
// Distinct instances with equal names are compatible; callers that care
// about representational identity must compare pointers themselves.
func Compatible(a, b *Dictionary) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !a.Serializable() || !b.Serializable() {
		return false
	}

	return a.transformName == b.transformName && a.cutoffName == b.cutoffName
}
