// Package reseq restores sequence order to unique-word counts that
// workers produce out of order.
package reseq

import (
	"errors"
	"fmt"

	db "tweetstats/debug"
	"tweetstats/queue"
	"tweetstats/tweet"
)

var (
	ErrGap       = errors.New("resequencer: sequence numbers missing at end of input")
	ErrDuplicate = errors.New("resequencer: duplicate sequence number")
)

type Resequencer struct {
	nproducer int
	in        *queue.Queue[tweet.UniqueCount]
	out       *queue.Queue[int]
	buf       map[tweet.Tseqno]int
	expect    tweet.Tseqno
}

func NewResequencer(nproducer int, in *queue.Queue[tweet.UniqueCount], out *queue.Queue[int]) *Resequencer {
	return &Resequencer{
		nproducer: nproducer,
		in:        in,
		out:       out,
		buf:       make(map[tweet.Tseqno]int),
	}
}

// Next is the lowest sequence number not yet emitted.
func (rs *Resequencer) Next() tweet.Tseqno {
	return rs.expect
}

// Buffered is the number of records held back waiting for a gap to fill.
func (rs *Resequencer) Buffered() int {
	return len(rs.buf)
}

// Insert buffers uc and emits every record that is now in order.
func (rs *Resequencer) Insert(uc tweet.UniqueCount) error {
	if _, ok := rs.buf[uc.Seqno]; ok || uc.Seqno < rs.expect {
		db.DPrintf(db.RESEQ_ERR, "duplicate %v expect %d", uc, rs.expect)
		return fmt.Errorf("%w: %d", ErrDuplicate, uc.Seqno)
	}
	rs.buf[uc.Seqno] = uc.N
	for {
		n, ok := rs.buf[rs.expect]
		if !ok {
			break
		}
		delete(rs.buf, rs.expect)
		rs.out.Put(n)
		rs.expect += 1
	}
	db.DPrintf(db.RESEQ, "insert %v expect %d buffered %d", uc, rs.expect, len(rs.buf))
	return nil
}

// Run consumes until every producer has sent its termination signal,
// then checks that nothing is left behind. The downstream termination
// signal is sent even on failure so the consumer never blocks.
func (rs *Resequencer) Run() error {
	defer rs.out.PutEOF()

	if err := rs.in.Drain(rs.nproducer, rs.Insert); err != nil {
		return err
	}
	if len(rs.buf) != 0 {
		db.DPrintf(db.RESEQ_ERR, "expect %d stranded %d", rs.expect, len(rs.buf))
		return fmt.Errorf("%w: missing %d, %d stranded", ErrGap, rs.expect, len(rs.buf))
	}
	return nil
}
