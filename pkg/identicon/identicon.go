package identicon

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-identicon/pkg/identicon/measure"
	"github.com/askiada/go-identicon/pkg/identicon/model"
	"github.com/askiada/go-identicon/pkg/identicon/render"
	"github.com/askiada/go-identicon/pkg/identicon/trace"
)

// Generator runs the identicon pipeline. It holds no per-image state
// and may be shared by concurrent calls.
type Generator struct {
	hasher  Hasher
	factory render.Factory
	saver   Saver
	measure measure.Measure
	tracer  trace.Tracer
}

// New creates a generator. Without options it hashes with MD5, draws
// PNG canvases and saves under the img folder.
func New(opts ...Option) (*Generator, error) {
	gen := &Generator{
		hasher:  MD5Hasher{},
		factory: &render.PNG{},
		saver:   FolderSaver{Dir: DefaultFolder},
	}

	for _, opt := range opts {
		opt(gen)
	}

	if gen.hasher == nil {
		return nil, ErrHasherMustBeSet
	}

	if gen.measure != nil {
		for _, name := range model.Stages {
			gen.measure.AddMetric(name)
		}
	}

	if gen.tracer != nil {
		err := gen.traceShape()
		if err != nil {
			return nil, errors.Wrap(err, "unable to record pipeline shape")
		}
	}

	return gen, nil
}

// traceShape registers the fixed stage chain with the tracer:
// start -> hash -> ... -> save -> end.
func (g *Generator) traceShape() error {
	previous := model.StartStage

	for _, name := range model.Stages {
		err := g.tracer.AddStage(name)
		if err != nil {
			return err
		}

		err = g.tracer.AddLink(previous, name)
		if err != nil {
			return err
		}

		previous = name
	}

	return g.tracer.AddLink(previous, model.EndStage)
}

// runStage checks for cancellation, runs one stage on the record and
// feeds its duration to the configured metric. Errors come back
// decorated with the stage name.
func (g *Generator) runStage(ctx context.Context, name string, img model.Image, stageFn func(model.Image) (model.Image, error)) (model.Image, error) {
	select {
	case <-ctx.Done():
		return img, errors.Wrapf(ctx.Err(), "stage %s", name)
	default:
	}

	start := time.Now()

	out, err := stageFn(img)
	if err != nil {
		return img, errors.Wrapf(err, "stage %s", name)
	}

	if g.measure != nil {
		if metric := g.measure.GetMetric(name); metric != nil {
			metric.AddDuration(time.Since(start))
		}
	}

	return out, nil
}

// Render runs every stage up to and including draw. It never touches
// the filesystem; the returned record carries the encoded PNG bytes.
func (g *Generator) Render(ctx context.Context, input string) (*model.Image, error) {
	if g == nil {
		return nil, ErrGeneratorMustBeSet
	}

	img := model.Image{Input: input}
	var err error

	img, err = g.runStage(ctx, model.StageHash, img, func(img model.Image) (model.Image, error) {
		img.Hash = g.hasher.Hash([]byte(img.Input))
		return img, nil
	})
	if err != nil {
		return nil, err
	}

	img, err = g.runStage(ctx, model.StageColor, img, pickColor)
	if err != nil {
		return nil, err
	}

	img, err = g.runStage(ctx, model.StageGrid, img, func(img model.Image) (model.Image, error) {
		return buildGrid(img), nil
	})
	if err != nil {
		return nil, err
	}

	img, err = g.runStage(ctx, model.StageFilter, img, func(img model.Image) (model.Image, error) {
		return dropOddCells(img), nil
	})
	if err != nil {
		return nil, err
	}

	img, err = g.runStage(ctx, model.StagePixelMap, img, func(img model.Image) (model.Image, error) {
		return buildPixelMap(img), nil
	})
	if err != nil {
		return nil, err
	}

	img, err = g.runStage(ctx, model.StageDraw, img, g.draw)
	if err != nil {
		return nil, err
	}

	return &img, nil
}

// Generate renders the identicon for input and saves it. It returns
// the path the image was written to.
func (g *Generator) Generate(ctx context.Context, input string) (string, error) {
	if g == nil {
		return "", ErrGeneratorMustBeSet
	}

	start := time.Now()

	img, err := g.Render(ctx, input)
	if err != nil {
		return "", err
	}

	var path string

	_, err = g.runStage(ctx, model.StageSave, *img, func(img model.Image) (model.Image, error) {
		written, err := g.saver.Save(img.Input, img.Bytes)
		if err != nil {
			return img, err
		}

		path = written

		return img, nil
	})
	if err != nil {
		return "", err
	}

	if g.measure != nil {
		if metric := g.measure.GetMetric(model.StageSave); metric != nil {
			metric.SetTotalDuration(time.Since(start))
		}
	}

	return path, nil
}

// GenerateAll generates one identicon per input concurrently. The
// first error cancels the remaining inputs.
func (g *Generator) GenerateAll(ctx context.Context, inputs []string) error {
	if g == nil {
		return ErrGeneratorMustBeSet
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(runtime.NumCPU())

	for _, input := range inputs {
		input := input
		errGrp.Go(func() error {
			_, err := g.Generate(dCtx, input)
			return err
		})
	}

	return errGrp.Wait()
}

// Finish flushes the tracer, attaching collected timings when a
// measure is configured. Call it once all generating is done.
func (g *Generator) Finish() error {
	if g == nil {
		return ErrGeneratorMustBeSet
	}

	if g.tracer == nil {
		return nil
	}

	if g.measure != nil {
		err := g.tracer.AddMeasure(g.measure)
		if err != nil {
			return errors.Wrap(err, "unable to add measure to tracer")
		}
	}

	err := g.tracer.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}
