// Package assess reduces the per-locus pairwise alignment reports of a
// targeted assembly run to a representative result table. Loci are
// assessed on a fixed pool of workers that funnel their selected rows
// over a channel into a single table writer.
package assess

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/IGS/ISCA/config"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// writeResult carries the writer's outcome back to the orchestrator.
type writeResult struct {
	written int
	err     error
}

// Assess reads the assembly map and assesses every locus in it, writing
// the selected hits to the output table. Per-locus failures only cost
// that locus its rows; a bad configuration or a failing writer aborts
// the whole run.
func Assess(c config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	kind, err := ParseKind(c.Type)
	if err != nil {
		return err
	}

	loci, err := ReadMap(c.Map, c.Alignments)
	if err != nil {
		return err
	}

	// the single consumer of every record produced below
	records := make(chan Record, c.CPUs)
	writeDone := make(chan writeResult, 1)
	go func() {
		written, err := writeTable(c.Out, kind, records)
		writeDone <- writeResult{written: written, err: err}
	}()

	var progress *mpb.Progress
	var bar *mpb.Bar
	if !c.Quiet && len(loci) > 0 {
		progress = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		bar = progress.AddBar(int64(len(loci)),
			mpb.PrependDecorators(
				decor.Name("assessed loci: "),
				decor.CountersNoUnit("%d / %d"),
			),
		)
	}

	jobs := make(chan Locus)
	var wg sync.WaitGroup
	var empty atomic.Int64 // loci that yielded no rows
	for i := 0; i < c.CPUs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for locus := range jobs {
				if assessLocus(locus, kind, c.Priority, c.BestOnly, records) == 0 {
					empty.Add(1)
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}

	for _, locus := range loci {
		jobs <- locus
	}
	close(jobs)

	// every dispatched locus must have finished before the writer is told
	// to stop, otherwise in-flight rows would be dropped
	wg.Wait()
	close(records)

	result := <-writeDone
	if progress != nil {
		progress.Wait()
	}
	if result.err != nil {
		return result.err
	}

	log.Infof("assessed %d loci: %d rows written, %d loci without a valid alignment",
		len(loci), result.written, empty.Load())

	return nil
}

// assessLocus runs the scan, parse, score and select reduction for one
// locus and sends the selected rows to the writer. It returns the number
// of rows sent: zero when the locus directory is missing or no report
// survived parsing.
func assessLocus(locus Locus, kind AssemblyKind, priority string, bestOnly bool, records chan<- Record) int {
	reports, err := scanLocus(locus.Dir, kind, priority)
	if err != nil {
		log.Warnf("skipping locus %s: %v", locus.ID, err)
		return 0
	}

	candidates := buildCandidates(reports, kind)
	if len(candidates) == 0 {
		log.Infof("no valid alignment for locus %s", locus.ID)
		return 0
	}

	selected := selectCandidates(candidates, kind, bestOnly)
	for _, c := range selected {
		records <- newRecord(c)
	}

	return len(selected)
}
