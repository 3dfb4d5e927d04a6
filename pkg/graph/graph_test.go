package graph

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-structures/pkg/logging"
	"github.com/dd0wney/cluso-structures/pkg/metrics"
	dto "github.com/prometheus/client_model/go"
)

func containsID(ids []ID, id ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestNewNode(t *testing.T) {
	n := NewNode(12)
	if n.Value != 12 {
		t.Errorf("Value = %d, want 12", n.Value)
	}
	if n.ID().IsNil() {
		t.Error("NewNode must assign an ID")
	}
}

func TestGraph_AddNode(t *testing.T) {
	g := New[int64]()

	id0 := g.AddNode(NewNode[int64](12))
	id1 := g.AddNodeWithValue(15)

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	if ids := g.NodeIDs(); ids[0] != id0 || ids[1] != id1 {
		t.Errorf("NodeIDs() = %v, want insertion order [%s %s]", ids, id0, id1)
	}

	n, err := g.GetNode(id1)
	if err != nil {
		t.Fatalf("GetNode failed: %v", err)
	}
	if n.Value != 15 || n.ID() != id1 {
		t.Errorf("GetNode = %+v, want value 15 id %s", n, id1)
	}
}

func TestGraph_AddNode_ReassignsDuplicateID(t *testing.T) {
	g := New[string]()
	n := NewNode("a")

	first := g.AddNode(n)
	second := g.AddNode(n)
	zero := g.AddNode(Node[string]{Value: "z"})

	if first != n.ID() {
		t.Errorf("first insert should keep the node's ID")
	}
	if second == first {
		t.Error("re-adding a node must not reuse its ID")
	}
	if zero.IsNil() {
		t.Error("zero-value node must get a fresh ID")
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
}

func TestGraph_GetNode_NotFound(t *testing.T) {
	g := New[int]()
	g.AddNodeWithValue(1)

	_, err := g.GetNode(NewID())
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
	var gerr *GraphError
	if !errors.As(err, &gerr) || gerr.Op != "GetNode" {
		t.Errorf("expected *GraphError with Op GetNode, got %#v", err)
	}

	_, err = g.GetNode(NilID)
	if !errors.Is(err, ErrNilID) || !IsNotFound(err) {
		t.Errorf("expected ErrNilID, got %v", err)
	}
}

func TestGraph_GetNodeMut(t *testing.T) {
	g := New[int]()
	id := g.AddNodeWithValue(1)

	n, err := g.GetNodeMut(id)
	if err != nil {
		t.Fatalf("GetNodeMut failed: %v", err)
	}
	n.Value = 42

	got, _ := g.GetNode(id)
	if got.Value != 42 {
		t.Errorf("value after mutation = %d, want 42", got.Value)
	}

	if _, err := g.GetNodeMut(NewID()); !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestGraph_UpdateNode(t *testing.T) {
	g := New[[]string]()
	id := g.AddNodeWithValue([]string{"a"})

	err := g.UpdateNode(id, func(v *[]string) {
		*v = append(*v, "b")
	})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}

	n, _ := g.GetNode(id)
	if strings.Join(n.Value, ",") != "a,b" {
		t.Errorf("value = %v, want [a b]", n.Value)
	}

	called := false
	err = g.UpdateNode(NewID(), func(*[]string) { called = true })
	if !IsNotFound(err) || called {
		t.Errorf("UpdateNode on unknown id: err=%v called=%v", err, called)
	}
}

type labels struct {
	names []string
}

func (l labels) Clone() labels {
	return labels{names: append([]string(nil), l.names...)}
}

func TestGraph_ValuesAreCloned(t *testing.T) {
	g := New[labels]()
	id := g.AddNodeWithValue(labels{names: []string{"x"}})

	n, _ := g.GetNode(id)
	n.Value.names[0] = "mutated"

	vals := g.GetNodeValues([]ID{id})
	vals[0].Value.names[0] = "mutated too"

	stored, _ := g.GetNodeMut(id)
	if stored.Value.names[0] != "x" {
		t.Errorf("stored value leaked through a copy: %v", stored.Value.names)
	}
}

func TestGraph_GetNodeValues(t *testing.T) {
	g := New[int]()
	a := g.AddNodeWithValue(1)
	b := g.AddNodeWithValue(2)
	missing := NewID()

	got := g.GetNodeValues([]ID{b, missing, a, NilID, b})
	want := []Lookup[int]{
		{Value: 2, Found: true},
		{},
		{Value: 1, Found: true},
		{},
		{Value: 2, Found: true},
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGraph_Neighbors(t *testing.T) {
	g := New[int64]()
	id0 := g.AddNodeWithValue(12)
	id1 := g.AddNodeWithValue(15)
	id2 := g.AddNodeWithValue(1)
	g.AddNodeWithValue(2)

	if err := g.AddEdge(id0, id1); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := g.AddEdge(id2, id0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	neighbors := g.GetNodeNeighbors(id0)
	if len(neighbors) != 2 || neighbors[0] != id1 || neighbors[1] != id2 {
		t.Errorf("neighbors(id0) = %v, want [%s %s]", neighbors, id1, id2)
	}
	if n := g.GetNodeNeighbors(id1); len(n) != 1 || n[0] != id0 {
		t.Errorf("neighbors(id1) = %v, want [%s]", n, id0)
	}
	if !containsID(g.Neighbors(id2), id0) {
		t.Error("Neighbors must match GetNodeNeighbors")
	}
}

func TestGraph_AddEdge_Idempotent(t *testing.T) {
	g := New[string]()
	a := g.AddNodeWithValue("a")
	b := g.AddNodeWithValue("b")

	for _, pair := range [][2]ID{{a, b}, {b, a}, {a, b}} {
		if err := g.AddEdge(pair[0], pair[1]); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if len(g.GetNodeEdges(a)) != 1 || len(g.GetNodeNeighbors(b)) != 1 {
		t.Error("duplicate logical edge leaked into adjacency")
	}
	if !g.HasEdge(b, a) {
		t.Error("HasEdge must ignore orientation")
	}
}

func TestGraph_SelfLoop(t *testing.T) {
	g := New[int]()
	a := g.AddNodeWithValue(1)

	if err := g.AddEdge(a, a); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	edges := g.GetNodeEdges(a)
	if len(edges) != 1 || !edges[0].IsLoop() {
		t.Errorf("edges = %v, want one loop", edges)
	}
	if n := g.GetNodeNeighbors(a); len(n) != 1 || n[0] != a {
		t.Errorf("neighbors = %v, want [%s]", n, a)
	}
}

func TestGraph_AddEdge_RejectsUnknownEndpoint(t *testing.T) {
	var buf bytes.Buffer
	reg := metrics.NewRegistry()
	g := New[int](
		WithLogger(logging.NewJSONLogger(&buf, logging.WarnLevel)),
		WithMetrics(reg),
	)
	a := g.AddNodeWithValue(1)
	ghost := NewID()

	err := g.AddEdge(a, ghost)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	var gerr *GraphError
	if !errors.As(err, &gerr) || gerr.ID != ghost {
		t.Errorf("error should name the missing endpoint, got %v", err)
	}
	if g.EdgeCount() != 0 || len(g.GetNodeEdges(a)) != 0 {
		t.Error("rejected edge must not be stored")
	}
	if !strings.Contains(buf.String(), "edge rejected") {
		t.Errorf("expected a warning, got %q", buf.String())
	}

	var m dto.Metric
	if err := reg.GraphEdgesRejectedTotal.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if m.GetCounter().GetValue() != 1 {
		t.Errorf("rejected counter = %v, want 1", m.GetCounter().GetValue())
	}
}

func TestGraph_MetricsTrackSize(t *testing.T) {
	reg := metrics.NewRegistry()
	g := New[int](WithMetrics(reg))
	a := g.AddNodeWithValue(1)
	b := g.AddNodeWithValue(2)
	g.AddEdge(a, b)
	g.AddEdge(b, a)

	var m dto.Metric
	reg.GraphNodesTotal.Write(&m)
	if m.GetGauge().GetValue() != 2 {
		t.Errorf("nodes gauge = %v, want 2", m.GetGauge().GetValue())
	}
	m.Reset()
	reg.GraphEdgesTotal.Write(&m)
	if m.GetGauge().GetValue() != 1 {
		t.Errorf("edges gauge = %v, want 1", m.GetGauge().GetValue())
	}
}

func TestEdge_Canonical(t *testing.T) {
	a, b := NewID(), NewID()
	e1, e2 := NewEdge(a, b), NewEdge(b, a)

	if e1 != e2 {
		t.Errorf("NewEdge(a,b)=%v != NewEdge(b,a)=%v", e1, e2)
	}
	if e1.A.Compare(e1.B) > 0 {
		t.Error("canonical edge must order A before B")
	}
	if e1.Other(a) != b || e1.Other(b) != a {
		t.Error("Other returned the wrong endpoint")
	}
	if e1.Has(NewID()) {
		t.Error("Has reported a foreign ID")
	}
}

func TestParseID(t *testing.T) {
	id := NewID()
	parsed, err := ParseID(id.String())
	if err != nil || parsed != id {
		t.Errorf("ParseID(%s) = %s, %v", id, parsed, err)
	}
	if _, err := ParseID("not-a-uuid"); err == nil {
		t.Error("expected error for malformed ID")
	}
}
