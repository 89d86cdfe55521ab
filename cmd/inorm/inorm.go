package main

import(
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/abworrall/inorm/pkg/ibatch"
)

var(
	fVerbosity    int
	fOutputDir    string
	fOutputSuffix string
	fGrayModel    string
	fWorkers      int
	fDumpStages   bool
	fStats        bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fOutputDir, "o", "", "directory for output images (default: next to each input)")
	flag.StringVar(&fOutputSuffix, "suffix", "", "appended to each output file's base name (default -inorm)")
	flag.StringVar(&fGrayModel, "gray", "", "how to turn color inputs gray: luma, lightness")
	flag.IntVar(&fWorkers, "j", 0, "how many images to process at once (default: number of CPUs)")
	flag.BoolVar(&fDumpStages, "dump", false, "also write a PNG of each intermediate stage")
	flag.BoolVar(&fStats, "stats", false, "log value ranges for each stage, and output histograms")
	flag.Parse()

	log.Printf("inorm starting\n")
}

func main() {
	if flag.NArg() == 0 {
		log.Fatalf("usage: inorm [flags] <images|dirs|config.yaml>...")
	}

	b := ibatch.NewBatch()
	if err := b.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	// Override the config file with command line args, if relevant
	if fVerbosity > 0 { b.Config.Verbosity = fVerbosity }
	if fOutputDir != "" { b.Config.OutputDir = fOutputDir }
	if fOutputSuffix != "" { b.Config.OutputSuffix = fOutputSuffix }
	if fGrayModel != "" { b.Config.GrayModel = fGrayModel }
	if fWorkers > 0 { b.Config.Workers = fWorkers }
	if fDumpStages { b.Config.DumpStages = true }
	if fStats { b.Config.Stats = true }

	if err := b.Config.Finalize(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	if b.Config.OutputDir != "" {
		if err := os.MkdirAll(b.Config.OutputDir, 0755); err != nil {
			log.Fatal(err)
		}
	}

	if b.Config.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", b.Config.AsYaml())
		log.Printf("%s", b)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatalf("normalization failed: %v", err)
	}
	log.Printf("%d images normalized\n", len(b.Jobs))
}
