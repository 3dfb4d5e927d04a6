// Package scenario loads YAML files that describe a search space, either a
// blocked-cell grid or a named undirected graph, together with the
// shortest-path queries to run against it.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-structures/pkg/grid"
	"github.com/dd0wney/cluso-structures/pkg/validation"
)

// Scenario is the top-level document. Exactly one of Grid and Graph is set.
type Scenario struct {
	Name      string     `yaml:"name" validate:"required"`
	MaxRounds int        `yaml:"max_rounds" validate:"gte=0"`
	Grid      *GridSpec  `yaml:"grid,omitempty" validate:"omitempty"`
	Graph     *GraphSpec `yaml:"graph,omitempty" validate:"omitempty"`
}

// Cell is a grid coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (c Cell) Point() grid.Point { return grid.P(c.X, c.Y) }

// Wall blocks a W x H rectangle anchored at X, Y.
type Wall struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w" validate:"min=1"`
	H int `yaml:"h" validate:"min=1"`
}

type GridQuery struct {
	From Cell `yaml:"from"`
	To   Cell `yaml:"to"`
}

type GridSpec struct {
	Width   int         `yaml:"width" validate:"min=1,max=4096"`
	Height  int         `yaml:"height" validate:"min=1,max=4096"`
	Blocked []Cell      `yaml:"blocked"`
	Walls   []Wall      `yaml:"walls" validate:"dive"`
	Queries []GridQuery `yaml:"queries" validate:"required,min=1"`
}

// Link names two nodes, as an edge or as a query.
type Link struct {
	From string `yaml:"from" validate:"required,nodename"`
	To   string `yaml:"to" validate:"required,nodename"`
}

type GraphSpec struct {
	Nodes   []string `yaml:"nodes" validate:"required,min=1,dive,nodename"`
	Edges   []Link   `yaml:"edges" validate:"dive"`
	Queries []Link   `yaml:"queries" validate:"required,min=1,dive"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario held in memory.
func Parse(data []byte) (*Scenario, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode scenario: empty document")
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Kind reports "grid" or "graph".
func (s *Scenario) Kind() string {
	if s.Grid != nil {
		return "grid"
	}
	return "graph"
}

// Validate checks struct tags first, then the rules that span fields.
func (s *Scenario) Validate() error {
	if err := validation.Struct(s); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	cv := validation.NewConfigValidator("scenario")
	cv.Custom("grid|graph", func() error {
		if (s.Grid == nil) == (s.Graph == nil) {
			return errors.New("exactly one of grid or graph must be set")
		}
		return nil
	})
	cv.When(s.Grid != nil, func(cv *validation.ConfigValidator) { s.Grid.check(cv) })
	cv.When(s.Graph != nil, func(cv *validation.ConfigValidator) { s.Graph.check(cv) })

	if err := cv.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}

func (g *GridSpec) check(cv *validation.ConfigValidator) {
	inside := func(field string, c Cell) {
		cv.RangeInt(field+".x", c.X, 0, g.Width-1)
		cv.RangeInt(field+".y", c.Y, 0, g.Height-1)
	}
	for i, c := range g.Blocked {
		inside(fmt.Sprintf("grid.blocked[%d]", i), c)
	}
	for i, w := range g.Walls {
		inside(fmt.Sprintf("grid.walls[%d]", i), Cell{w.X, w.Y})
		inside(fmt.Sprintf("grid.walls[%d].end", i), Cell{w.X + w.W - 1, w.Y + w.H - 1})
	}
	for i, q := range g.Queries {
		inside(fmt.Sprintf("grid.queries[%d].from", i), q.From)
		inside(fmt.Sprintf("grid.queries[%d].to", i), q.To)
	}
}

func (g *GraphSpec) check(cv *validation.ConfigValidator) {
	names := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, dup := names[n]; dup {
			cv.Custom(fmt.Sprintf("graph.nodes[%d]", i), func() error {
				return fmt.Errorf("duplicate node %q", n)
			})
		}
		names[n] = struct{}{}
	}
	for i, e := range g.Edges {
		cv.Known(fmt.Sprintf("graph.edges[%d].from", i), e.From, names)
		cv.Known(fmt.Sprintf("graph.edges[%d].to", i), e.To, names)
	}
	for i, q := range g.Queries {
		cv.Known(fmt.Sprintf("graph.queries[%d].from", i), q.From, names)
		cv.Known(fmt.Sprintf("graph.queries[%d].to", i), q.To, names)
	}
}
