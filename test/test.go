// Package test has helpers shared by the pipeline tests.
package test

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thanhpk/randstr"
	"golang.org/x/exp/rand"

	"tweetstats/config"
	db "tweetstats/debug"
)

const (
	MBYTE   = 1 << 20
	LETTERS = "abcdef"
	UPPER   = "ABCDEF"
)

var Nmsg int
var Seed uint64

func init() {
	flag.IntVar(&Nmsg, "nmsg", 2000, "Number of random messages")
	flag.Uint64Var(&Seed, "seed", 1, "Random seed")
}

func Mbyte(sz int64) float64 {
	return float64(sz) / float64(MBYTE)
}

func TputStr(sz int64, ms int64) string {
	if ms == 0 {
		return "inf"
	}
	s := float64(ms) / 1000
	return fmt.Sprintf("%.2fMB/s", Mbyte(sz)/s)
}

type Tstate struct {
	T   *testing.T
	Dir string
	Cfg *config.Config
	rnd *rand.Rand
}

func NewTstate(t *testing.T) *Tstate {
	ts := &Tstate{
		T:   t,
		Dir: t.TempDir(),
		Cfg: config.NewConfig(),
		rnd: rand.New(rand.NewSource(Seed)),
	}
	ts.Cfg.OutDir = filepath.Join(ts.Dir, config.OUTDIR)
	if err := os.Mkdir(ts.Cfg.OutDir, 0755); err != nil {
		db.DFatalf("Mkdir %v err %v", ts.Cfg.OutDir, err)
	}
	return ts
}

// OutputFiles returns the paths of every ft1.txt or ft2.txt under the
// test directory.
func (ts *Tstate) OutputFiles() []string {
	pns := make([]string, 0)
	err := filepath.WalkDir(ts.Dir, func(pn string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (d.Name() == config.FT1 || d.Name() == config.FT2) {
			pns = append(pns, pn)
		}
		return nil
	})
	assert.Nil(ts.T, err, "WalkDir %v", ts.Dir)
	return pns
}

// RandMessage returns up to maxword short lowercase words, drawn from a
// small alphabet so that words repeat. With probability 1/ninvalid one
// word is uppercase, which makes the whole message invalid.
func (ts *Tstate) RandMessage(maxword, ninvalid int) string {
	n := ts.rnd.Intn(maxword + 1)
	ws := make([]string, n)
	for i := range ws {
		ws[i] = randstr.String(1+ts.rnd.Intn(3), LETTERS)
	}
	if n > 0 && ninvalid > 0 && ts.rnd.Intn(ninvalid) == 0 {
		ws[ts.rnd.Intn(n)] = randstr.String(2, UPPER)
	}
	return strings.Join(ws, " ")
}

func (ts *Tstate) RandMessages(nmsg, maxword, ninvalid int) []string {
	msgs := make([]string, nmsg)
	for i := range msgs {
		msgs[i] = ts.RandMessage(maxword, ninvalid)
	}
	return msgs
}

// WriteInput writes lines, one per line, to a file in the test directory
// and returns its path.
func (ts *Tstate) WriteInput(name string, lines []string) string {
	pn := filepath.Join(ts.Dir, name)
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	err := os.WriteFile(pn, []byte(data), 0644)
	assert.Nil(ts.T, err, "WriteFile %v", pn)
	return pn
}

func (ts *Tstate) ReadOutput(name string) string {
	pn := filepath.Join(ts.Cfg.OutDir, name)
	b, err := os.ReadFile(pn)
	assert.Nil(ts.T, err, "ReadFile %v", pn)
	db.DPrintf(db.TEST, "%v: %d bytes", pn, len(b))
	return string(b)
}
