// Package config holds the run parameters of the tweet pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	db "tweetstats/debug"
	"tweetstats/median"
)

const (
	TWEETCONFIG = "TWEETCONFIG"
	OUTDIR      = "tweet_output"
	FT1         = "ft1.txt"
	FT2         = "ft2.txt"
	MAXLINE     = 1 << 20
	CACHESZ     = 4096
)

var (
	ErrBadConfig = errors.New("bad config")
	ErrNotDir    = errors.New("not a directory")
	ErrNoDir     = errors.New("directory does not exist")
)

type Config struct {
	Nworker     int              `yaml:"nworker" mapstructure:"nworker"`
	HistSize    int              `yaml:"histsize" mapstructure:"histsize"`
	Overflow    median.Toverflow `yaml:"overflow" mapstructure:"overflow"`
	OutDir      string           `yaml:"outdir" mapstructure:"outdir"`
	Inputs      []string         `yaml:"inputs" mapstructure:"inputs"`
	MaxLineSize int              `yaml:"maxlinesize" mapstructure:"maxlinesize"`
	CacheSize   int              `yaml:"cachesize" mapstructure:"cachesize"` // 0 disables the word-count cache
	TraceHost   string           `yaml:"tracehost" mapstructure:"tracehost"`
}

func NewConfig() *Config {
	return &Config{
		Nworker:     runtime.GOMAXPROCS(0),
		HistSize:    median.HISTSZ,
		Overflow:    median.CLAMP,
		OutDir:      OUTDIR,
		MaxLineSize: MAXLINE,
		CacheSize:   CACHESZ,
	}
}

// ReadConfig decodes the YAML file pn on top of the defaults. Fields
// missing from the file keep their default value.
func ReadConfig(pn string) (*Config, error) {
	cfg := NewConfig()
	file, err := os.Open(pn)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	d := yaml.NewDecoder(file)
	if err := d.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrBadConfig, pn, err)
	}
	db.DPrintf(db.CONFIG, "ReadConfig %v: %v", pn, cfg)
	return cfg, nil
}

// LoadConfig reads the file named by $TWEETCONFIG, if set, and
// otherwise returns the defaults.
func LoadConfig() (*Config, error) {
	if pn := os.Getenv(TWEETCONFIG); pn != "" {
		return ReadConfig(pn)
	}
	return NewConfig(), nil
}

// Override sets fields from key/value pairs, such as those given with
// -set on the command line. Values may be strings; they are converted
// to the field's type.
func (cfg *Config) Override(kvs map[string]any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := d.Decode(kvs); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	db.DPrintf(db.CONFIG, "Override %v: %v", kvs, cfg)
	return nil
}

func (cfg *Config) Validate() error {
	if cfg.Nworker < 1 {
		return fmt.Errorf("%w: nworker %d", ErrBadConfig, cfg.Nworker)
	}
	if cfg.HistSize < 1 {
		return fmt.Errorf("%w: histsize %d", ErrBadConfig, cfg.HistSize)
	}
	if cfg.MaxLineSize < 1 {
		return fmt.Errorf("%w: maxlinesize %d", ErrBadConfig, cfg.MaxLineSize)
	}
	if cfg.CacheSize < 0 {
		return fmt.Errorf("%w: cachesize %d", ErrBadConfig, cfg.CacheSize)
	}
	switch cfg.Overflow {
	case median.CLAMP, median.REJECT:
	default:
		return fmt.Errorf("%w: overflow %q", ErrBadConfig, cfg.Overflow)
	}
	return CheckOutDir(cfg.OutDir)
}

// CheckOutDir succeeds only if pn is an existing directory.
func CheckOutDir(pn string) error {
	if pn == "" {
		return fmt.Errorf("%w: empty outdir", ErrBadConfig)
	}
	st, err := os.Stat(pn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrNoDir, pn)
		}
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %v", ErrNotDir, pn)
	}
	return nil
}

func (cfg *Config) String() string {
	return fmt.Sprintf("{nworker %d histsize %d overflow %v outdir %q inputs %v maxline %d cache %d trace %q}",
		cfg.Nworker, cfg.HistSize, cfg.Overflow, cfg.OutDir, cfg.Inputs, cfg.MaxLineSize, cfg.CacheSize, cfg.TraceHost)
}
