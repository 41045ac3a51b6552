package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"tweetstats/config"
	"tweetstats/median"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv(config.TWEETCONFIG, "")
	cfg, err := parseArgs("tweetstats", nil)
	assert.Nil(t, err)
	assert.Equal(t, config.OUTDIR, cfg.OutDir)
	assert.Equal(t, 0, len(cfg.Inputs))
}

func TestParseFlags(t *testing.T) {
	t.Setenv(config.TWEETCONFIG, "")
	cfg, err := parseArgs("tweetstats", []string{"-o", "out", "-n", "3", "-set", "overflow=reject", "-set", "histsize=10", "a.txt", "b"})
	assert.Nil(t, err)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 3, cfg.Nworker)
	assert.Equal(t, median.REJECT, cfg.Overflow)
	assert.Equal(t, 10, cfg.HistSize)
	assert.Equal(t, []string{"a.txt", "b"}, cfg.Inputs)
}

func TestParseConfigFile(t *testing.T) {
	pn := filepath.Join(t.TempDir(), "cfg.yml")
	assert.Nil(t, os.WriteFile(pn, []byte("nworker: 2\noutdir: x\n"), 0644))
	cfg, err := parseArgs("tweetstats", []string{"-config", pn, "-o", "y"})
	assert.Nil(t, err)
	assert.Equal(t, 2, cfg.Nworker)
	assert.Equal(t, "y", cfg.OutDir)
}

func TestParseBadSet(t *testing.T) {
	_, err := parseArgs("tweetstats", []string{"-set", "novalue"})
	assert.NotNil(t, err)
	_, err = parseArgs("tweetstats", []string{"-set", "bogus=1"})
	assert.True(t, errors.Is(err, config.ErrBadConfig))
}
