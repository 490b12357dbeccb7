package utils

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the drivers
type Config struct {
	Rows            int           `json:"rows" yaml:"rows"`
	Cols            int           `json:"cols" yaml:"cols"`
	RowMax          int           `json:"row_max" yaml:"row_max"`
	ColMax          int           `json:"col_max" yaml:"col_max"`
	HistoryCapacity int           `json:"history_capacity" yaml:"history_capacity"`
	MaxGenerations  int           `json:"max_generations" yaml:"max_generations"`
	FrameRate       time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Seed            int64         `json:"seed" yaml:"seed"`
	OutputFile      string        `json:"output_file" yaml:"output_file"`
	Glyphs          bool          `json:"glyphs" yaml:"glyphs"`
	OpenOutput      bool          `json:"open_output" yaml:"open_output"`
	SurveyRuns      int           `json:"survey_runs" yaml:"survey_runs"`
	SurveyWorkers   int           `json:"survey_workers" yaml:"survey_workers"`
	ReportFile      string        `json:"report_file" yaml:"report_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:            4,
		Cols:            4,
		RowMax:          100,
		ColMax:          100,
		HistoryCapacity: 20,
		MaxGenerations:  100,
		FrameRate:       500 * time.Millisecond,
		Seed:            time.Now().UnixNano(),
		OutputFile:      "output.txt",
		Glyphs:          true,
		OpenOutput:      true,
		SurveyRuns:      64,
		SurveyWorkers:   8,
	}
}

// LoadConfig loads configuration from a JSON or YAML file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Flags are the command-line parameters of the binary
type Flags struct {
	ConfigFile string
	Mode       string
	Seed       int64
}

// Bind attaches the flags to the provided FlagSet
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "config.json", "JSON or YAML configuration file")
	fs.StringVar(&f.Mode, "mode", "console", "driver to run: console, watch or survey")
	fs.Int64Var(&f.Seed, "seed", 0, "seed for the initial population (0 keeps the configured seed)")
}
