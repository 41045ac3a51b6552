package ingest

import (
	"github.com/sasha-s/go-deadlock"

	"tweetstats/tweet"
)

// Sequencer hands out sequence numbers 0, 1, 2, ... exactly once each.
type Sequencer struct {
	deadlock.Mutex
	seqno tweet.Tseqno
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

func (s *Sequencer) Next() tweet.Tseqno {
	s.Lock()
	defer s.Unlock()

	v := s.seqno
	s.seqno++
	return v
}

// Assigned is the number of sequence numbers handed out so far.
func (s *Sequencer) Assigned() uint64 {
	s.Lock()
	defer s.Unlock()

	return uint64(s.seqno)
}
