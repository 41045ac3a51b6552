package stats

import (
	"fmt"
	"sync/atomic"
)

const STATS = true

type Tcounter = atomic.Int64

func Inc(c *Tcounter, v int64) {
	if STATS {
		c.Add(v)
	}
}

func Max(max *Tcounter, v int64) {
	if STATS {
		for {
			old := max.Load()
			if old == 0 || v > old {
				if ok := max.CompareAndSwap(old, v); ok {
					return
				}
				// retry
			} else {
				return
			}
		}
	}
}

func Read(c *Tcounter) int64 {
	if STATS {
		return c.Load()
	}
	return 0
}

// Per-stage counters. Each stage owns one Tstats; the pipeline merges
// them after all stages have been joined.
type Tstats struct {
	Nmsg     Tcounter // messages handled
	Ninvalid Tcounter // messages the filter replaced by ""
	Nword    Tcounter // words, counting repeats
	Nbyte    Tcounter // input bytes
	MaxUniq  Tcounter // largest unique-word count seen
	Nhit     Tcounter // word-count cache hits
}

// Merge adds the counters of src into st.
func (st *Tstats) Merge(src *Tstats) {
	Inc(&st.Nmsg, Read(&src.Nmsg))
	Inc(&st.Ninvalid, Read(&src.Ninvalid))
	Inc(&st.Nword, Read(&src.Nword))
	Inc(&st.Nbyte, Read(&src.Nbyte))
	Max(&st.MaxUniq, Read(&src.MaxUniq))
	Inc(&st.Nhit, Read(&src.Nhit))
}

func (st *Tstats) String() string {
	return fmt.Sprintf("{nmsg %d ninvalid %d nword %d nbyte %d maxuniq %d nhit %d}",
		Read(&st.Nmsg), Read(&st.Ninvalid), Read(&st.Nword), Read(&st.Nbyte), Read(&st.MaxUniq), Read(&st.Nhit))
}
