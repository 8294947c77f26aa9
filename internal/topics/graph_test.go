package topics

import (
	"reflect"
	"testing"
)

func TestNew_SymmetricClosure(t *testing.T) {
	g := New(map[string][]string{
		"history": {"geography"},
	})

	if got := g.Related("history"); !reflect.DeepEqual(got, []string{"geography"}) {
		t.Errorf("Related(history) = %v", got)
	}
	if got := g.Related("geography"); !reflect.DeepEqual(got, []string{"history"}) {
		t.Errorf("Related(geography) = %v, want the reverse edge", got)
	}
}

func TestNew_DeterministicOrder(t *testing.T) {
	g := New(map[string][]string{
		"science": {"space", "nature", "technology"},
	})
	want := []string{"nature", "space", "technology"}
	if got := g.Related("science"); !reflect.DeepEqual(got, want) {
		t.Errorf("Related(science) = %v, want %v", got, want)
	}
}

func TestRelated_UnknownAndNil(t *testing.T) {
	g := New(nil)
	if got := g.Related("unknown"); got != nil {
		t.Errorf("Related(unknown) = %v, want nil", got)
	}

	var nilGraph *Graph
	if got := nilGraph.Related("anything"); got != nil {
		t.Errorf("nil graph Related = %v, want nil", got)
	}
	if got := nilGraph.RelatedSet("anything"); got != nil {
		t.Errorf("nil graph RelatedSet = %v, want nil", got)
	}
}

func TestNew_IgnoresSelfAndEmpty(t *testing.T) {
	g := New(map[string][]string{
		"science": {"science", "", "nature"},
	})
	if got := g.Related("science"); !reflect.DeepEqual(got, []string{"nature"}) {
		t.Errorf("Related(science) = %v, want [nature]", got)
	}
}

func TestDefault_HasSeedEdges(t *testing.T) {
	g := Default()
	set := g.RelatedSet("science")
	if set == nil {
		t.Fatal("expected default relations for science")
	}
	if _, ok := set["technology"]; !ok {
		t.Error("science should relate to technology")
	}
}
