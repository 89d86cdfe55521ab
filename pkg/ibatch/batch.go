package ibatch

import(
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abworrall/inorm/pkg/emath"
	"github.com/abworrall/inorm/pkg/inorm"
)

// A Job is one input image file to normalize.
type Job struct {
	Filename string
}

func (j Job)String() string { return filepath.Base(j.Filename) }

// A Batch holds the config, and the files to be run through it.
type Batch struct {
	Config
	Jobs   []Job
}

func NewBatch() Batch {
	return Batch{
		Config: NewConfig(),
		Jobs:   []Job{},
	}
}

func (b Batch)String() string {
	str := fmt.Sprintf("Batch of %d [\n", len(b.Jobs))
	for _, j := range b.Jobs {
		str += fmt.Sprintf("  %s\n", j.Filename)
	}
	return str + "]\n"
}

func (b *Batch)Add(j Job) {
	b.Jobs = append(b.Jobs, j)
}

// OutputFilename is where the result for j gets written: a PNG, named
// after the input plus the suffix, in OutputDir or next to the input.
func (b *Batch)OutputFilename(j Job, suffix string) string {
	dir := b.Config.OutputDir
	if dir == "" {
		dir = filepath.Dir(j.Filename)
	}
	base := strings.TrimSuffix(filepath.Base(j.Filename), filepath.Ext(j.Filename))
	return filepath.Join(dir, base + b.Config.OutputSuffix + suffix + ".png")
}

// Run normalizes every job, up to Config.Workers at a time. A failed
// file doesn't stop the others; all the failures come back joined
// together. Cancelling ctx stops any jobs that haven't started yet.
func (b *Batch)Run(ctx context.Context) error {
	var(
		mu   sync.Mutex
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	if b.Config.Workers > 0 {
		g.SetLimit(b.Config.Workers)
	}

	for _, j := range b.Jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.RunJob(j); err != nil {
				log.Printf("%s: %v\n", j, err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// RunJob decodes, normalizes and writes out one file.
func (b *Batch)RunJob(j Job) error {
	if b.Config.Verbosity > 0 {
		if cam := DescribeCamera(j.Filename); cam != "" {
			log.Printf("%s: %s\n", j, cam)
		}
	}

	src, err := DecodeFile(j.Filename, b.Config.GetGrayModel())
	if err != nil {
		return err
	}

	p := inorm.Pipeline{}
	if b.Config.DumpStages || b.Config.Stats {
		p.Observer = func(stage inorm.Stage, fm emath.FloatMatrix) { b.observe(j, stage, fm) }
	}

	dst := p.Normalize(src)

	outfile := b.OutputFilename(j, "")
	if err := WritePNG(dst.Gray(), outfile); err != nil {
		return err
	}

	if b.Config.Stats {
		is, err := inorm.ImageHistogram(dst)
		if err != nil {
			return err
		}
		log.Printf("%s: output %s\n", j, is)
	}
	if b.Config.Verbosity > 0 {
		log.Printf("%s: %s written to '%s'\n", j, dst, outfile)
	}

	return nil
}

func (b *Batch)observe(j Job, stage inorm.Stage, fm emath.FloatMatrix) {
	if b.Config.Stats {
		log.Printf("%s: %-8s %s\n", j, stage, inorm.MatrixStats(fm))
	}
	if b.Config.DumpStages {
		filename := b.OutputFilename(j, "-"+string(stage))
		if err := fm.ToImg(fmt.Sprintf("%s %s", j, stage), filename); err != nil {
			log.Printf("%s: dumping %s: %v\n", j, stage, err)
		}
	}
}
