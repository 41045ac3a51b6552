// Package accum merges per-message word counts into the global
// frequency table and writes it, sorted by word, once all workers are
// done.
package accum

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	db "tweetstats/debug"
	"tweetstats/queue"
	"tweetstats/stats"
	"tweetstats/tweet"
)

const (
	WORDWIDTH = 28
)

type Table map[string]uint64

func (tbl Table) Merge(c tweet.Tcounts) {
	for w, n := range c {
		tbl[w] += n
	}
}

// Words returns the table's words in ascending order.
func (tbl Table) Words() []string {
	ws := maps.Keys(tbl)
	slices.Sort(ws)
	return ws
}

func (tbl Table) Write(wrt io.Writer) error {
	bw := bufio.NewWriter(wrt)
	for _, w := range tbl.Words() {
		if _, err := fmt.Fprintf(bw, "%-*s %d\n", WORDWIDTH, w, tbl[w]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type Accumulator struct {
	nproducer int
	in        *queue.Queue[tweet.Tcounts]
	out       io.Writer
	tbl       Table
	stats     *stats.Tstats
}

func NewAccumulator(nproducer int, in *queue.Queue[tweet.Tcounts], out io.Writer) *Accumulator {
	return &Accumulator{
		nproducer: nproducer,
		in:        in,
		out:       out,
		tbl:       make(Table),
		stats:     &stats.Tstats{},
	}
}

func (a *Accumulator) Table() Table {
	return a.tbl
}

func (a *Accumulator) Stats() *stats.Tstats {
	return a.stats
}

func (a *Accumulator) merge(c tweet.Tcounts) error {
	a.tbl.Merge(c)
	stats.Inc(&a.stats.Nmsg, 1)
	for _, n := range c {
		stats.Inc(&a.stats.Nword, int64(n))
	}
	return nil
}

// Run merges maps until nproducer termination signals have arrived and
// then writes the table exactly once.
func (a *Accumulator) Run() error {
	if err := a.in.Drain(a.nproducer, a.merge); err != nil {
		return err
	}
	db.DPrintf(db.ACCUM, "merged %d maps, %d distinct words", stats.Read(&a.stats.Nmsg), len(a.tbl))
	if err := a.tbl.Write(a.out); err != nil {
		db.DPrintf(db.ACCUM_ERR, "Write err %v", err)
		return err
	}
	return nil
}
