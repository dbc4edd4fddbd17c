package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/askiada/go-identicon/pkg/identicon"
	"github.com/askiada/go-identicon/pkg/identicon/measure"
	"github.com/askiada/go-identicon/pkg/identicon/trace"
)

var (
	outDir    = flag.String("out", identicon.DefaultFolder, "Folder the images are written to")
	traceFile = flag.String("trace", "", "Write a Graphviz DOT file describing the pipeline run")
)

func main() {
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatal("usage: identicon [-out folder] [-trace file.dot] input [input ...]")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("unable to create output folder: %v", err)
	}

	opts := []identicon.Option{
		identicon.WithSaver(identicon.FolderSaver{Dir: *outDir}),
	}

	if *traceFile != "" {
		tracer, err := trace.NewDOTTracer(*traceFile)
		if err != nil {
			log.Fatalf("unable to create tracer: %v", err)
		}
		opts = append(opts,
			identicon.WithTracer(tracer),
			identicon.WithMeasure(measure.NewDefaultMeasure()),
		)
	}

	gen, err := identicon.New(opts...)
	if err != nil {
		log.Fatalf("unable to create generator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gen.GenerateAll(ctx, inputs); err != nil {
		log.Fatalf("unable to generate identicons: %v", err)
	}

	if err := gen.Finish(); err != nil {
		log.Fatalf("unable to finish pipeline: %v", err)
	}

	log.Printf("wrote %d identicon(s) to %s", len(inputs), *outDir)
}
