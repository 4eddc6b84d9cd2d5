package style

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Merge picks single winning triple for every physical property: the one with
// highest specificity. Result does not depend on order of triples.
//
// Two triples with equal specificity for the same physical property mean
// tables are broken. Merge fails immediately in this case, it never picks one
// arbitrarily.
func Merge(triples []Triple) (map[PropertyName]Triple, error) {
	groups := make(map[PropertyName][]Triple)
	for _, tr := range triples {
		groups[tr.Physical] = append(groups[tr.Physical], tr)
	}

	names := make([]PropertyName, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	winners := make(map[PropertyName]Triple, len(groups))
	for _, name := range names {
		group := groups[name]
		slices.SortFunc(group, func(a, b Triple) int {
			if c := cmp.Compare(b.Specificity, a.Specificity); c != 0 {
				return c
			}
			return strings.Compare(string(a.Source), string(b.Source))
		})
		for i := 1; i < len(group); i++ {
			if group[i].Specificity == group[i-1].Specificity {
				return nil, &PropertyError{
					Property: name,
					Err: fmt.Errorf("%w: %q and %q have specificity %d",
						ErrSpecificityConflict, group[i-1].Source, group[i].Source, group[i].Specificity),
				}
			}
		}
		winners[name] = group[0]
	}
	return winners, nil
}
