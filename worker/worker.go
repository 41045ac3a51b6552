// Package worker implements the pool of goroutines that filter and
// count the words of each message.
package worker

import (
	"sync"

	db "tweetstats/debug"
	"tweetstats/queue"
	"tweetstats/stats"
	"tweetstats/tweet"
)

type Worker struct {
	id    int
	in    *queue.Queue[tweet.Message]
	wc    *queue.Queue[tweet.Tcounts]
	uc    *queue.Queue[tweet.UniqueCount]
	cache *Ccache
	stats *stats.Tstats
}

func NewWorker(id int, in *queue.Queue[tweet.Message], wc *queue.Queue[tweet.Tcounts], uc *queue.Queue[tweet.UniqueCount]) *Worker {
	return &Worker{
		id:    id,
		in:    in,
		wc:    wc,
		uc:    uc,
		stats: &stats.Tstats{},
	}
}

func (w *Worker) Stats() *stats.Tstats {
	return w.stats
}

func (w *Worker) doMsg(m tweet.Message) {
	e := w.count(m.Text)
	if !e.Valid {
		stats.Inc(&w.stats.Ninvalid, 1)
	}
	c := e.C
	stats.Inc(&w.stats.Nmsg, 1)
	w.wc.Put(c)
	w.uc.Put(tweet.UniqueCount{Seqno: m.Seqno, N: len(c)})
}

func (w *Worker) count(text string) Centry {
	if w.cache != nil {
		if e, ok := w.cache.Lookup(text); ok {
			stats.Inc(&w.stats.Nhit, 1)
			return e
		}
	}
	c, ok := tweet.CountValid(text)
	e := Centry{C: c, Valid: ok}
	if w.cache != nil {
		w.cache.Insert(text, e)
	}
	return e
}

// Work processes messages until it dequeues a termination signal and
// then sends one termination signal on each output queue.
func (w *Worker) Work() {
	defer w.uc.PutEOF()
	defer w.wc.PutEOF()

	for {
		m := w.in.Get()
		if m.IsEOF() {
			break
		}
		w.doMsg(m.Val)
	}
	db.DPrintf(db.WORKER, "worker %d done %v", w.id, w.stats)
}

type Pool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

func NewPool(nworker int, in *queue.Queue[tweet.Message], wc *queue.Queue[tweet.Tcounts], uc *queue.Queue[tweet.UniqueCount]) *Pool {
	p := &Pool{workers: make([]*Worker, nworker)}
	for i := range p.workers {
		p.workers[i] = NewWorker(i, in, wc, uc)
	}
	return p
}

// SetCache makes all workers share a cache of sz entries. Call before
// Start.
func (p *Pool) SetCache(sz int) error {
	cc, err := NewCcache(sz)
	if err != nil {
		return err
	}
	for _, w := range p.workers {
		w.cache = cc
	}
	return nil
}

func (p *Pool) Nworker() int {
	return len(p.workers)
}

// Start launches one goroutine per worker.
func (p *Pool) Start() {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Work()
		}(w)
	}
}

func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stats merges the counters of all workers; call after Wait.
func (p *Pool) Stats() *stats.Tstats {
	st := &stats.Tstats{}
	for _, w := range p.workers {
		st.Merge(w.stats)
	}
	return st
}
