package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"tweetstats/config"
	db "tweetstats/debug"
	"tweetstats/pipeline"
)

// kvs collects repeated -set key=value flags.
type kvs map[string]any

func (kv kvs) String() string {
	return fmt.Sprint(map[string]any(kv))
}

func (kv kvs) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("%w: -set %q, want key=value", config.ErrBadConfig, s)
	}
	kv[k] = v
	return nil
}

func parseArgs(name string, args []string) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	pn := fs.String("config", "", "YAML config file (default $"+config.TWEETCONFIG+")")
	outdir := fs.String("o", "", "output directory (default "+config.OUTDIR+")")
	nworker := fs.Int("n", 0, "number of workers (default number of CPUs)")
	debug := fs.String("debug", "", "debug selectors, separated by ';'")
	set := make(kvs)
	fs.Var(set, "set", "override a config field, as key=value (repeatable)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [input ...]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *debug != "" {
		db.SetLabels(*debug)
	}

	var cfg *config.Config
	var err error
	if *pn != "" {
		cfg, err = config.ReadConfig(*pn)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Override(set); err != nil {
		return nil, err
	}
	if *outdir != "" {
		cfg.OutDir = *outdir
	}
	if *nworker != 0 {
		cfg.Nworker = *nworker
	}
	if fs.NArg() > 0 {
		cfg.Inputs = fs.Args()
	}
	return cfg, nil
}

func main() {
	// Match GOMAXPROCS, and so the default worker count, to the CPU quota.
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...interface{}) {
		db.DPrintf(db.CONFIG, format, v...)
	}))
	if err != nil {
		db.DPrintf(db.CONFIG, "maxprocs.Set err %v", err)
	}
	defer undo()

	cfg, err := parseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		db.DFatalf("parseArgs: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := pipeline.RunFiles(ctx, cfg)
	if err != nil {
		db.DFatalf("Run %v: %v", cfg, err)
	}
	db.DPrintf(db.ALWAYS, "%v", sum)
	db.Sync()
}
