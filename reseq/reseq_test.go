package reseq

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"tweetstats/queue"
	"tweetstats/tweet"
)

func collect(q *queue.Queue[int]) []int {
	vs := make([]int, 0)
	for {
		m := q.Get()
		if m.IsEOF() {
			return vs
		}
		vs = append(vs, m.Val)
	}
}

func TestInOrder(t *testing.T) {
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	for i := 0; i < 5; i++ {
		in.Put(tweet.UniqueCount{Seqno: tweet.Tseqno(i), N: i * 10})
	}
	in.PutEOF()
	rs := NewResequencer(1, in, out)
	assert.Nil(t, rs.Run())
	assert.Equal(t, []int{0, 10, 20, 30, 40}, collect(out))
}

func TestOutOfOrder(t *testing.T) {
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	rs := NewResequencer(2, in, out)

	assert.Nil(t, rs.Insert(tweet.UniqueCount{Seqno: 2, N: 2}))
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 1, rs.Buffered())
	assert.Nil(t, rs.Insert(tweet.UniqueCount{Seqno: 1, N: 1}))
	assert.Equal(t, 0, out.Len())
	assert.Nil(t, rs.Insert(tweet.UniqueCount{Seqno: 0, N: 0}))
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, 0, rs.Buffered())
	assert.Equal(t, tweet.Tseqno(3), rs.Next())

	in.PutEOF()
	in.PutEOF()
	assert.Nil(t, rs.Run())
	assert.Equal(t, []int{0, 1, 2}, collect(out))
}

func TestShuffledProducers(t *testing.T) {
	const (
		N         = 5000
		NPRODUCER = 4
	)
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	perm := rand.Perm(N)
	var wg sync.WaitGroup
	for p := 0; p < NPRODUCER; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := p; i < N; i += NPRODUCER {
				s := perm[i]
				in.Put(tweet.UniqueCount{Seqno: tweet.Tseqno(s), N: s})
			}
			in.PutEOF()
		}(p)
	}
	rs := NewResequencer(NPRODUCER, in, out)
	assert.Nil(t, rs.Run())
	wg.Wait()
	vs := collect(out)
	assert.Equal(t, N, len(vs))
	for i, v := range vs {
		if !assert.Equal(t, i, v) {
			break
		}
	}
}

func TestGap(t *testing.T) {
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	in.Put(tweet.UniqueCount{Seqno: 0, N: 1})
	in.Put(tweet.UniqueCount{Seqno: 2, N: 1})
	in.PutEOF()
	rs := NewResequencer(1, in, out)
	err := rs.Run()
	assert.ErrorIs(t, err, ErrGap)
	assert.Equal(t, []int{1}, collect(out), "downstream still terminated")
}

func TestDuplicate(t *testing.T) {
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	in.Put(tweet.UniqueCount{Seqno: 0, N: 1})
	in.Put(tweet.UniqueCount{Seqno: 0, N: 1})
	in.PutEOF()
	rs := NewResequencer(1, in, out)
	assert.ErrorIs(t, rs.Run(), ErrDuplicate)
	assert.Equal(t, []int{1}, collect(out))
}

func TestEmpty(t *testing.T) {
	in := queue.NewQueue[tweet.UniqueCount]("in")
	out := queue.NewQueue[int]("out")
	for i := 0; i < 3; i++ {
		in.PutEOF()
	}
	rs := NewResequencer(3, in, out)
	assert.Nil(t, rs.Run())
	assert.Equal(t, 0, len(collect(out)))
}
