package ingest

import (
	"bufio"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"tweetstats/queue"
	"tweetstats/tweet"
)

func TestSequencer(t *testing.T) {
	s := NewSequencer()
	for i := 0; i < 10; i++ {
		assert.Equal(t, tweet.Tseqno(i), s.Next())
	}
	assert.Equal(t, uint64(10), s.Assigned())
}

func TestSequencerConcurrent(t *testing.T) {
	const (
		N = 8
		M = 1000
	)
	s := NewSequencer()
	var mu sync.Mutex
	seen := make(map[tweet.Tseqno]bool)
	var wg sync.WaitGroup
	for i := 0; i < N; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < M; j++ {
				v := s.Next()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, N*M, len(seen))
	for i := 0; i < N*M; i++ {
		assert.True(t, seen[tweet.Tseqno(i)])
	}
}

func TestIngest(t *testing.T) {
	cases := []struct {
		input  string
		expect []string
	}{
		{"", []string{}},
		{"a\n", []string{"a"}},
		{"a\nb b\nc c c\nd\n\n", []string{"a", "b b", "c c c", "d", ""}},
		{"  padded  \r\nTHE END", []string{"padded", "THE END"}},
	}
	for _, c := range cases {
		const NWORKER = 3
		out := queue.NewQueue[tweet.Message]("dist")
		ig := NewIngestor(NWORKER, bufio.NewScanner(strings.NewReader(c.input)), out)
		assert.Nil(t, ig.Run())
		for i, e := range c.expect {
			m := out.Get()
			assert.False(t, m.IsEOF())
			assert.Equal(t, tweet.Message{Seqno: tweet.Tseqno(i), Text: e}, m.Val)
		}
		for i := 0; i < NWORKER; i++ {
			assert.True(t, out.Get().IsEOF())
		}
		assert.Equal(t, 0, out.Len())
		assert.Equal(t, int64(len(c.expect)), ig.Stats().Nmsg.Load())
	}
}

type failSrc struct {
	n int
}

func (f *failSrc) Scan() bool {
	f.n++
	return f.n <= 2
}

func (f *failSrc) Text() string {
	return "line"
}

func (f *failSrc) Err() error {
	return errors.New("disk on fire")
}

func TestIngestReadError(t *testing.T) {
	out := queue.NewQueue[tweet.Message]("dist")
	ig := NewIngestor(2, &failSrc{}, out)
	err := ig.Run()
	assert.NotNil(t, err)
	assert.Equal(t, 4, out.Len(), "two lines and two termination signals")
}
