package pipeline

import (
	"context"

	"tweetstats/ingest"
)

// ctxSource stops a line source once ctx is done.
type ctxSource struct {
	ctx context.Context
	src ingest.LineSource
	err error
}

func newCtxSource(ctx context.Context, src ingest.LineSource) *ctxSource {
	return &ctxSource{ctx: ctx, src: src}
}

func (cs *ctxSource) Scan() bool {
	if err := cs.ctx.Err(); err != nil {
		cs.err = err
		return false
	}
	return cs.src.Scan()
}

func (cs *ctxSource) Text() string {
	return cs.src.Text()
}

func (cs *ctxSource) Err() error {
	if cs.err != nil {
		return cs.err
	}
	return cs.src.Err()
}
