// Package ingest reads lines, numbers them in arrival order and hands
// them to the worker pool.
package ingest

import (
	"strings"

	db "tweetstats/debug"
	"tweetstats/queue"
	"tweetstats/stats"
	"tweetstats/tweet"
)

// LineSource is satisfied by *bufio.Scanner and *linesrc.Source.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

type Ingestor struct {
	nworker int
	src     LineSource
	out     *queue.Queue[tweet.Message]
	seq     *Sequencer
	stats   *stats.Tstats
}

func NewIngestor(nworker int, src LineSource, out *queue.Queue[tweet.Message]) *Ingestor {
	return &Ingestor{
		nworker: nworker,
		src:     src,
		out:     out,
		seq:     NewSequencer(),
		stats:   &stats.Tstats{},
	}
}

func (ig *Ingestor) Stats() *stats.Tstats {
	return ig.stats
}

func (ig *Ingestor) Sequencer() *Sequencer {
	return ig.seq
}

// Run sends every line, trimmed, to the distribution queue and then one
// termination signal per worker. The termination signals are sent even
// if reading fails, so the workers always stop.
func (ig *Ingestor) Run() error {
	defer func() {
		for i := 0; i < ig.nworker; i++ {
			ig.out.PutEOF()
		}
	}()

	for ig.src.Scan() {
		l := ig.src.Text()
		m := tweet.Message{Seqno: ig.seq.Next(), Text: strings.TrimSpace(l)}
		stats.Inc(&ig.stats.Nmsg, 1)
		stats.Inc(&ig.stats.Nbyte, int64(len(l)+1))
		db.DPrintf(db.INGEST, "msg %v", m)
		ig.out.Put(m)
	}
	if err := ig.src.Err(); err != nil {
		db.DPrintf(db.INGEST_ERR, "Scan err after %d lines: %v", ig.seq.Assigned(), err)
		return err
	}
	db.DPrintf(db.INGEST, "done %d lines", ig.seq.Assigned())
	return nil
}
