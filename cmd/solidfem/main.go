// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/cpmech/gosl/utl"

	"github.com/zbw2577/solidfem/femcore"
	"github.com/zbw2577/solidfem/inp"
	"github.com/zbw2577/solidfem/out"
	"github.com/zbw2577/solidfem/sla"
)

// timeout bounds the whole solve; the core checks no cancellation
// points internally (spec.md section 5's "no cooperation from the
// core"), so this only guards the CLI from hanging forever on a
// pathological input.
const timeout = 10 * time.Minute

func main() {
	utl.PfWhite("\nsolidfem -- a small TET10 solid-mechanics FE solver\n\n")
	utl.Pf("Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	logDir := flag.String("logdir", "", "directory for the run's log file (default: log to stderr)")
	flag.Parse()
	if flag.NArg() < 2 {
		log.Fatal("usage: solidfem [-logdir DIR] <input.json> <output.txt>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	if *logDir != "" {
		if err := inp.InitLogFile(*logDir, "solidfem"); err != nil {
			log.Fatalf("solidfem: cannot init log file: %v", err)
		}
		defer inp.FlushLog()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := run(ctx, inputPath, outputPath); err != nil {
		log.Fatalf("solidfem: %v", err)
	}
}

func run(ctx context.Context, inputPath, outputPath string) error {
	doc, err := inp.ReadDocument(inputPath)
	if err != nil {
		return err
	}
	task, err := doc.ToTask()
	if err != nil {
		return err
	}

	facade, err := femcore.NewSolverFacade(task)
	if err != nil {
		return err
	}

	type solveOutcome struct {
		result *femcore.SolveResult
		err    error
	}
	done := make(chan solveOutcome, 1)
	go func() {
		result, err := facade.Solve()
		done <- solveOutcome{result, err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case outcome := <-done:
		if outcome.err != nil {
			if _, ok := outcome.err.(*sla.DidNotConvergeError); !ok {
				return outcome.err
			}
			log.Printf("solidfem: %v", outcome.err)
		}
		if outcome.result.DegenerateCount > 0 {
			log.Printf("solidfem: %d degenerate Gauss point(s) skipped", outcome.result.DegenerateCount)
		}
		return out.WriteFile(outputPath, out.Record{Elem: facade.Elem(), Mesh: task.Mesh, Result: outcome.result})
	}
}
