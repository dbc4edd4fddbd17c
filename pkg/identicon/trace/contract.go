package trace

import (
	"github.com/askiada/go-identicon/pkg/identicon/measure"
)

// Tracer records the shape and timings of the identicon pipeline.
type Tracer interface {
	// AddStage adds a stage to the pipeline graph.
	AddStage(stageName string) error
	// AddLink adds a link between parent and child stages.
	AddLink(parentStageName, childStageName string) error
	// AddMeasure attaches the collected stage timings to the graph.
	AddMeasure(measure measure.Measure) error
	// Draw creates a file with the pipeline graph.
	Draw() error
}
