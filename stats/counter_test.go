package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInc(t *testing.T) {
	var c Tcounter
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				Inc(&c, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8000), Read(&c))
}

func TestMax(t *testing.T) {
	var m Tcounter
	Max(&m, 3)
	Max(&m, 1)
	Max(&m, 7)
	Max(&m, 5)
	assert.Equal(t, int64(7), Read(&m))
}

func TestMerge(t *testing.T) {
	var a, b Tstats
	Inc(&a.Nmsg, 2)
	Inc(&a.Nword, 5)
	Max(&a.MaxUniq, 4)
	Inc(&b.Nmsg, 3)
	Inc(&b.Ninvalid, 1)
	Max(&b.MaxUniq, 2)
	a.Merge(&b)
	assert.Equal(t, int64(5), Read(&a.Nmsg))
	assert.Equal(t, int64(1), Read(&a.Ninvalid))
	assert.Equal(t, int64(5), Read(&a.Nword))
	assert.Equal(t, int64(4), Read(&a.MaxUniq))
}
