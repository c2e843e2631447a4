package schema

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
)

func assertCascadeDelete(t *testing.T, edges []ent.Edge, name string) {
	t.Helper()
	for _, e := range edges {
		d := e.Descriptor()
		if d.Name != name {
			continue
		}
		for _, a := range d.Annotations {
			if sa, ok := a.(entsql.Annotation); ok && sa.OnDelete == entsql.Cascade {
				return
			}
		}
		t.Fatalf("edge %q has no cascade delete annotation", name)
	}
	t.Fatalf("edge %q not found", name)
}

// Deleting a faculty's clearance set must take its documents and their audit
// jobs with it instead of tripping over foreign keys.
func TestOwnershipEdgesCascadeDelete(t *testing.T) {
	assertCascadeDelete(t, ClearanceSet{}.Edges(), "documents")
	assertCascadeDelete(t, Document{}.Edges(), "jobs")
}
