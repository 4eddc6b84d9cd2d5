package style

import "fmt"

// Expand turns a single prop into candidate triples. Physical property yields
// one triple with DirectSpecificity, alias yields one triple per target
// carrying the same value. Value itself is never touched here.
func (t *Tables) Expand(name PropertyName, value ResponsiveValue) ([]Triple, error) {
	prop, ok := t.properties[name]
	if !ok {
		return nil, &PropertyError{Property: name, Err: ErrUnknownProperty}
	}

	targets := prop.Targets()
	triples := make([]Triple, 0, len(targets))
	for _, target := range targets {
		triples = append(triples, Triple{
			Physical:    target.Physical,
			Source:      name,
			Specificity: target.Specificity,
			Value:       value,
		})
	}
	return triples, nil
}

func (tr Triple) String() string {
	if tr.Specificity == DirectSpecificity {
		return fmt.Sprintf("%s <- %s (direct)", tr.Physical, tr.Source)
	}
	return fmt.Sprintf("%s <- %s (%d)", tr.Physical, tr.Source, tr.Specificity)
}
