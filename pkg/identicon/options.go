package identicon

import (
	"github.com/askiada/go-identicon/pkg/identicon/measure"
	"github.com/askiada/go-identicon/pkg/identicon/render"
	"github.com/askiada/go-identicon/pkg/identicon/trace"
)

type Option func(g *Generator)

// WithHasher replaces the default MD5 hasher.
func WithHasher(hasher Hasher) Option {
	return func(g *Generator) {
		g.hasher = hasher
	}
}

// WithCanvasFactory replaces the default PNG canvas factory.
func WithCanvasFactory(factory render.Factory) Option {
	return func(g *Generator) {
		g.factory = factory
	}
}

// WithSaver replaces the default folder saver.
func WithSaver(saver Saver) Option {
	return func(g *Generator) {
		g.saver = saver
	}
}

// WithMeasure collects per-stage durations into msr.
func WithMeasure(msr measure.Measure) Option {
	return func(g *Generator) {
		g.measure = msr
	}
}

// WithTracer records the pipeline graph; Finish writes it out.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Generator) {
		g.tracer = tracer
	}
}
