package style

import (
	"errors"
	"reflect"
	"testing"
)

func TestMergePicksHighestSpecificity(t *testing.T) {
	all := Single(Auto("400"))
	axis := Single(Auto("300"))
	direct := Single(Auto("200"))

	triples := []Triple{
		{Physical: "paddingInlineStart", Source: "padding", Specificity: SpecificityAll, Value: all},
		{Physical: "paddingInlineEnd", Source: "padding", Specificity: SpecificityAll, Value: all},
		{Physical: "paddingInlineStart", Source: "paddingInline", Specificity: SpecificityAxis, Value: axis},
		{Physical: "paddingInlineEnd", Source: "paddingInline", Specificity: SpecificityAxis, Value: axis},
		{Physical: "paddingInlineStart", Source: "paddingInlineStart", Specificity: DirectSpecificity, Value: direct},
	}

	want := map[PropertyName]Triple{
		"paddingInlineStart": triples[4],
		"paddingInlineEnd":   triples[3],
	}

	// every rotation of input must give the same winners
	for shift := range triples {
		input := append(append([]Triple(nil), triples[shift:]...), triples[:shift]...)
		got, err := Merge(input)
		if err != nil {
			t.Fatalf("Merge() shift %d error = %v", shift, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Merge() shift %d = %v, want %v", shift, got, want)
		}
	}
}

func TestMergeConflict(t *testing.T) {
	triples := []Triple{
		{Physical: "rowGap", Source: "gap", Specificity: 1, Value: Single(Auto("100"))},
		{Physical: "rowGap", Source: "gutter", Specificity: 1, Value: Single(Auto("200"))},
		{Physical: "rowGap", Source: "spacing", Specificity: 5, Value: Single(Auto("300"))},
	}

	for _, input := range [][]Triple{triples, {triples[2], triples[1], triples[0]}} {
		got, err := Merge(input)
		if got != nil {
			t.Errorf("Merge() = %v, want nil", got)
		}
		if !errors.Is(err, ErrSpecificityConflict) {
			t.Fatalf("Merge() error = %v, want ErrSpecificityConflict", err)
		}
		want := `rowGap: invalid definition: specificity conflict: "gap" and "gutter" have specificity 1`
		if err.Error() != want {
			t.Errorf("Merge() error = %q, want %q", err.Error(), want)
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	got, err := Merge(nil)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Merge() = %v, want empty", got)
	}
}
