package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"tweetstats/config"
	db "tweetstats/debug"
	"tweetstats/linesrc"
)

// RunFiles validates cfg, reads cfg.Inputs (standard input if there are
// none) and writes ft1.txt and ft2.txt into cfg.OutDir, which must
// exist. No file is created if cfg is invalid.
func RunFiles(ctx context.Context, cfg *config.Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := linesrc.NewSource(cfg.Inputs, cfg.MaxLineSize)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	ft1, err := os.Create(filepath.Join(cfg.OutDir, config.FT1))
	if err != nil {
		return nil, err
	}
	ft2, err := os.Create(filepath.Join(cfg.OutDir, config.FT2))
	if err != nil {
		ft1.Close()
		return nil, err
	}

	db.DPrintf(db.PIPELINE, "RunFiles %v inputs %v", cfg, src.Paths())
	sum, err := Run(ctx, cfg, src, ft1, ft2)
	for _, f := range []*os.File{ft1, ft2} {
		if err1 := closeFile(f); err == nil {
			err = err1
		}
	}
	return sum, err
}

func closeFile(f *os.File) error {
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
