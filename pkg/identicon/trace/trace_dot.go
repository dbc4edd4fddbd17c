package trace

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-identicon/internal/store"
	"github.com/askiada/go-identicon/pkg/identicon/measure"
	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// DOTTracer records the pipeline graph and writes it as a Graphviz DOT
// file, with average stage durations as labels.
type DOTTracer struct {
	graph       graph.Graph[string, string]
	store       store.CustomStore[string, string]
	stages      map[string]struct{}
	dotFileName string
}

// NewDOTTracer creates a tracer writing to the given file. The start
// and end vertices are added immediately.
func NewDOTTracer(dotFileName string) (*DOTTracer, error) {
	st := store.NewMemoryStore[string, string]()
	tracer := &DOTTracer{
		dotFileName: dotFileName,
		store:       st,
		graph:       graph.NewWithStore(graph.StringHash, st, graph.Directed()),
		stages:      make(map[string]struct{}),
	}

	for _, name := range []string{model.StartStage, model.EndStage} {
		err := tracer.AddStage(name)
		if err != nil {
			return nil, err
		}
	}

	return tracer, nil
}

// AddStage adds a stage to the pipeline graph.
func (d *DOTTracer) AddStage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	d.stages[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and child stages.
func (d *DOTTracer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure attaches the average stage durations to the graph. The
// label colour runs from blue for the fastest stage to red for the
// slowest one.
func (d *DOTTracer) AddMeasure(msr measure.Measure) error {
	allElapsed := make(map[time.Duration]string)
	sortedElapsed := []time.Duration{}

	for _, metric := range msr.AllMetrics() {
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}

		if _, ok := allElapsed[avg]; ok {
			continue
		}

		allElapsed[avg] = ""
		sortedElapsed = append(sortedElapsed, avg)
	}

	if len(sortedElapsed) == 0 {
		return nil
	}

	sort.Slice(sortedElapsed, func(i, j int) bool {
		return sortedElapsed[i] > sortedElapsed[j]
	})

	maxValue := sortedElapsed[0]
	minValue := sortedElapsed[len(sortedElapsed)-1]

	for curr := range allElapsed {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		colour, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction)))
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		allElapsed[curr] = colour.ToHEX().String()
	}

	d.updateMetrics(msr, allElapsed)

	return nil
}

func (d *DOTTracer) updateMetrics(msr measure.Measure, allElapsed map[time.Duration]string) {
	for name, metric := range msr.AllMetrics() {
		if _, ok := d.stages[name]; !ok {
			continue
		}

		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}

		label := avg.String()
		if metric.GetTotalDuration() > 0 {
			label += ", end: " + metric.GetTotalDuration().String()
		}

		fontColour := allElapsed[avg]

		d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
			p.Attributes["xlabel"] = label
			p.Attributes["fontcolor"] = fontColour
		})
	}
}

// Draw creates a DOT file with the pipeline graph.
func (d *DOTTracer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Tracer = (*DOTTracer)(nil)
