package pipeline

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Summary totals one run, collected from each stage after the join.
type Summary struct {
	Nworker   int
	Nmsg      int64
	Nbyte     int64
	Ninvalid  int64
	Nword     int64
	Ndistinct int64
	MaxUniq   int64
	Nclamped  int64
	Nhit      int64
	Elapsed   time.Duration
}

// Tput returns input bytes per second.
func (s *Summary) Tput() float64 {
	secs := s.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.Nbyte) / secs
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d workers: %s msgs (%s invalid) %s words (%s distinct) maxuniq %d clamped %d cache hits %s read %s in %v (%s/s)",
		s.Nworker,
		humanize.Comma(s.Nmsg),
		humanize.Comma(s.Ninvalid),
		humanize.Comma(s.Nword),
		humanize.Comma(s.Ndistinct),
		s.MaxUniq,
		s.Nclamped,
		humanize.Comma(s.Nhit),
		humanize.Bytes(uint64(s.Nbyte)),
		s.Elapsed.Round(time.Millisecond),
		humanize.Bytes(uint64(s.Tput())))
}
