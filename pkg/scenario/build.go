package scenario

import (
	"fmt"

	"github.com/dd0wney/cluso-structures/pkg/algorithms"
	"github.com/dd0wney/cluso-structures/pkg/graph"
	"github.com/dd0wney/cluso-structures/pkg/grid"
	"github.com/dd0wney/cluso-structures/pkg/logging"
	"github.com/dd0wney/cluso-structures/pkg/metrics"
)

// Result is the outcome of one query.
type Result struct {
	Index  int
	From   string
	To     string
	Found  bool
	Path   []string
	Hops   int
	Rounds int
}

// Runner executes the queries of a built scenario. Run is safe to call from
// several goroutines at once.
type Runner interface {
	Len() int
	Run(i int, opts algorithms.SearchOptions) (Result, error)
}

// BuildOptions carries the observability hooks handed to built structures.
type BuildOptions struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Build materialises the search space and returns a Runner over its queries.
func (s *Scenario) Build(opts BuildOptions) (Runner, error) {
	switch {
	case s.Grid != nil:
		return buildGrid(s.Grid), nil
	case s.Graph != nil:
		return buildGraph(s.Graph, opts)
	default:
		return nil, fmt.Errorf("scenario %q has no search space", s.Name)
	}
}

type gridRunner struct {
	g       *grid.Grid
	queries []GridQuery
}

func buildGrid(spec *GridSpec) *gridRunner {
	g := grid.New(spec.Width, spec.Height)
	for _, c := range spec.Blocked {
		g.Block(c.Point())
	}
	for _, w := range spec.Walls {
		for p := range grid.Rect(w.X, w.Y, w.W, w.H) {
			g.Block(p)
		}
	}
	return &gridRunner{g: g, queries: spec.Queries}
}

func (r *gridRunner) Len() int { return len(r.queries) }

func (r *gridRunner) Run(i int, opts algorithms.SearchOptions) (Result, error) {
	if i < 0 || i >= len(r.queries) {
		return Result{}, fmt.Errorf("query %d out of range", i)
	}
	q := r.queries[i]
	from, to := q.From.Point(), q.To.Point()

	res, err := algorithms.ShortestPathWithOptions(from, to, r.g, opts)
	out := Result{Index: i, From: from.String(), To: to.String(), Found: res.Found, Rounds: res.Rounds, Hops: -1}
	if err != nil {
		return out, err
	}

	out.Hops = algorithms.Hops(res.Path)
	for _, p := range res.Path {
		out.Path = append(out.Path, p.String())
	}
	return out, nil
}

type graphRunner struct {
	g       *graph.SyncGraph[string]
	ids     map[string]graph.ID
	queries []Link
}

func buildGraph(spec *GraphSpec, opts BuildOptions) (*graphRunner, error) {
	var gopts []graph.Option
	if opts.Logger != nil {
		gopts = append(gopts, graph.WithLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		gopts = append(gopts, graph.WithMetrics(opts.Metrics))
	}

	g := graph.NewSync[string](gopts...)
	ids := make(map[string]graph.ID, len(spec.Nodes))
	for _, name := range spec.Nodes {
		ids[name] = g.AddNodeWithValue(name)
	}
	for _, e := range spec.Edges {
		if err := g.AddEdge(ids[e.From], ids[e.To]); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}
	return &graphRunner{g: g, ids: ids, queries: spec.Queries}, nil
}

func (r *graphRunner) Len() int { return len(r.queries) }

func (r *graphRunner) Run(i int, opts algorithms.SearchOptions) (Result, error) {
	if i < 0 || i >= len(r.queries) {
		return Result{}, fmt.Errorf("query %d out of range", i)
	}
	q := r.queries[i]

	res, err := algorithms.ShortestPathWithOptions(r.ids[q.From], r.ids[q.To], r.g, opts)
	out := Result{Index: i, From: q.From, To: q.To, Found: res.Found, Rounds: res.Rounds, Hops: -1}
	if err != nil {
		return out, err
	}

	out.Hops = algorithms.Hops(res.Path)
	for _, l := range r.g.GetNodeValues(res.Path) {
		out.Path = append(out.Path, l.Value)
	}
	return out, nil
}
