// Package pipeline wires the stages together: an ingestor feeding a
// worker pool, whose output goes to the word accumulator and, through
// the resequencer, to the running-median calculator.
package pipeline

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"tweetstats/accum"
	"tweetstats/config"
	db "tweetstats/debug"
	"tweetstats/ingest"
	"tweetstats/median"
	"tweetstats/queue"
	"tweetstats/reseq"
	"tweetstats/tweet"
	"tweetstats/util/tracing"
	"tweetstats/worker"
)

type Pipeline struct {
	cfg   *config.Config
	tr    *tracing.Tracer
	src   ingest.LineSource
	distq *queue.Queue[tweet.Message]
	wcq   *queue.Queue[tweet.Tcounts]
	ucq   *queue.Queue[tweet.UniqueCount]
	medq  *queue.Queue[int]
	ing   *ingest.Ingestor
	pool  *worker.Pool
	acc   *accum.Accumulator
	rs    *reseq.Resequencer
	calc  *median.Calculator
}

// NewPipeline builds all stages. Nothing runs until Run. The word table
// is written to ft1 and the medians to ft2.
func NewPipeline(cfg *config.Config, tr *tracing.Tracer, src ingest.LineSource, ft1, ft2 io.Writer) (*Pipeline, error) {
	p := &Pipeline{
		cfg:   cfg,
		tr:    tr,
		src:   src,
		distq: queue.NewQueue[tweet.Message]("dist"),
		wcq:   queue.NewQueue[tweet.Tcounts]("wordcount"),
		ucq:   queue.NewQueue[tweet.UniqueCount]("uniqcount"),
		medq:  queue.NewQueue[int]("median"),
	}
	p.pool = worker.NewPool(cfg.Nworker, p.distq, p.wcq, p.ucq)
	p.acc = accum.NewAccumulator(cfg.Nworker, p.wcq, ft1)
	p.rs = reseq.NewResequencer(cfg.Nworker, p.ucq, p.medq)
	p.calc = median.NewCalculator(cfg.HistSize, cfg.Overflow, p.medq, ft2)
	if cfg.CacheSize > 0 {
		if err := p.pool.SetCache(cfg.CacheSize); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Pipeline) stage(ctx context.Context, g *errgroup.Group, name string, f func() error) {
	g.Go(func() error {
		_, span := p.tr.StartStageSpan(ctx, name, 0)
		defer span.End()
		if err := f(); err != nil {
			db.DPrintf(db.PIPELINE_ERR, "stage %v err %v", name, err)
			span.RecordError(err)
			return err
		}
		return nil
	})
}

// Run starts every consumer stage, then ingests the input, and returns
// once all stages have finished. It returns the first stage error. If
// ctx is cancelled, or a stage fails, ingestion stops early. Run may be
// called only once.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	ctx, span := p.tr.StartContextSpan(ctx, "pipeline")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	p.ing = ingest.NewIngestor(p.cfg.Nworker, newCtxSource(gctx, p.src), p.distq)

	p.stage(ctx, g, "accumulator", p.acc.Run)
	p.stage(ctx, g, "resequencer", p.rs.Run)
	p.stage(ctx, g, "median", p.calc.Run)
	p.pool.Start()
	p.stage(ctx, g, "workers", func() error {
		p.pool.Wait()
		return nil
	})

	_, ispan := p.tr.StartStageSpan(ctx, "ingest", 0)
	ierr := p.ing.Run()
	endSpan(ispan, ierr)

	err := g.Wait()
	if err == nil {
		err = ierr
	}
	sum := p.summary(time.Since(start))
	if err != nil {
		db.DPrintf(db.PIPELINE_ERR, "Run err %v after %v", err, sum)
		span.RecordError(err)
		return sum, err
	}
	db.DPrintf(db.PIPELINE, "Run done %v", sum)
	return sum, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

func (p *Pipeline) summary(elapsed time.Duration) *Summary {
	ist := p.ing.Stats()
	return &Summary{
		Nworker:   p.pool.Nworker(),
		Nmsg:      ist.Nmsg.Load(),
		Nbyte:     ist.Nbyte.Load(),
		Ninvalid:  p.pool.Stats().Ninvalid.Load(),
		Nword:     p.acc.Stats().Nword.Load(),
		Ndistinct: int64(len(p.acc.Table())),
		MaxUniq:   p.calc.Stats().MaxUniq.Load(),
		Nclamped:  int64(p.calc.Histogram().Nclamped()),
		Nhit:      p.pool.Stats().Nhit.Load(),
		Elapsed:   elapsed,
	}
}

// Run runs one pipeline over src with the tracer configured by cfg.
func Run(ctx context.Context, cfg *config.Config, src ingest.LineSource, ft1, ft2 io.Writer) (*Summary, error) {
	tr, err := tracing.Init(tracing.SVCNAME, cfg.TraceHost)
	if err != nil {
		return nil, err
	}
	defer tr.Shutdown()
	p, err := NewPipeline(cfg, tr, src, ft1, ft2)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx)
}
