package ibatch

import(
	"fmt"
	"log"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/inorm/pkg/ecolor"
)

/* Example config file ...

verbosity: 1
outputdir: normalized
outputsuffix: -inorm
graymodel: lightness
workers: 4
dumpstages: false
stats: true

*/

type Config struct {
	Verbosity     int
	OutputDir     string  // Where to write results; empty means next to each input
	OutputSuffix  string  // Appended to the input's base name
	GrayModel     string  // How color inputs become gray: see ecolor.GrayModels
	Workers       int     // How many files to process at once
	DumpStages    bool    // Write a PNG of each intermediate float matrix
	Stats         bool    // Log value ranges and output histograms
}

func NewConfig() Config {
	return Config{
		OutputSuffix: "-inorm",
		GrayModel:    string(ecolor.Luma),
		Workers:      runtime.NumCPU(),
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, c.Finalize()
}

func loadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", filename, err)
	}
	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Finalize does sanity checks, and fills in defaults for zero values
func (c *Config)Finalize() error {
	if _, err := ecolor.ParseGrayModel(c.GrayModel); err != nil {
		return err
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.OutputSuffix == "" && c.OutputDir == "" {
		return fmt.Errorf("need an OutputSuffix or an OutputDir, or inputs get overwritten")
	}
	return nil
}

func (c Config)GetGrayModel() ecolor.GrayModel {
	m, err := ecolor.ParseGrayModel(c.GrayModel)
	if err != nil {
		log.Fatal(err)
	}
	return m
}
