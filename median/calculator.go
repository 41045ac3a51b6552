// Package median computes a running median of unique-word counts with
// a bounded histogram, emitting one value per message.
package median

import (
	"bufio"
	"fmt"
	"io"

	db "tweetstats/debug"
	"tweetstats/queue"
	"tweetstats/stats"
)

type Calculator struct {
	hist  *Histogram
	in    *queue.Queue[int]
	wrt   *bufio.Writer
	stats *stats.Tstats
}

func NewCalculator(hsz int, overflow Toverflow, in *queue.Queue[int], out io.Writer) *Calculator {
	return &Calculator{
		hist:  NewHistogram(hsz, overflow),
		in:    in,
		wrt:   bufio.NewWriter(out),
		stats: &stats.Tstats{},
	}
}

func (c *Calculator) Histogram() *Histogram {
	return c.hist
}

func (c *Calculator) Stats() *stats.Tstats {
	return c.stats
}

// Update adds v to the histogram and returns the new median.
func (c *Calculator) Update(v int) (Median, error) {
	if err := c.hist.Add(v); err != nil {
		db.DPrintf(db.MEDIAN_ERR, "Add %d err %v", v, err)
		return Median{}, err
	}
	if v >= c.hist.Len() {
		db.DPrintf(db.MEDIAN_ERR, "clamp %d to %d", v, c.hist.Len()-1)
	}
	stats.Inc(&c.stats.Nmsg, 1)
	stats.Max(&c.stats.MaxUniq, int64(v))
	m := c.hist.Median()
	db.DPrintf(db.MEDIAN, "v %d total %d median %v", v, c.hist.Total(), m)
	return m, nil
}

// Run consumes counts, in sequence order, from the single upstream
// producer and writes one median per line.
func (c *Calculator) Run() error {
	err := c.in.Drain(1, func(v int) error {
		m, err := c.Update(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.wrt, m); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := c.wrt.Flush(); err != nil {
		db.DPrintf(db.MEDIAN_ERR, "Flush err %v", err)
		return err
	}
	db.DPrintf(db.MEDIAN, "done %v", c.hist)
	return nil
}
