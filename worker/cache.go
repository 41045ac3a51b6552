package worker

import (
	"github.com/hashicorp/golang-lru/v2"

	db "tweetstats/debug"
	"tweetstats/tweet"
)

// Centry is the result of filtering and counting one message text.
type Centry struct {
	C     tweet.Tcounts
	Valid bool
}

// Ccache maps message text to its word counts, so that repeated
// messages (e.g., retweets) are tokenized once. Cached maps are shared
// and must not be modified.
type Ccache struct {
	c *lru.Cache[string, Centry]
}

func NewCcache(sz int) (*Ccache, error) {
	c, err := lru.New[string, Centry](sz)
	if err != nil {
		return nil, err
	}
	return &Ccache{c: c}, nil
}

func (cc *Ccache) Lookup(text string) (Centry, bool) {
	return cc.c.Get(text)
}

func (cc *Ccache) Insert(text string, e Centry) {
	if evict := cc.c.Add(text, e); evict {
		db.DPrintf(db.WORKER, "Ccache eviction")
	}
}

func (cc *Ccache) Len() int {
	return cc.c.Len()
}
