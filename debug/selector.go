package debug

type Tselector string

// ALWAYS
const (
	ALWAYS Tselector = "ALWAYS"
	ERROR  Tselector = "ERROR"
	NEVER  Tselector = "NEVER"
)

// ERR
const (
	ERR Tselector = "_ERR"
)

// Tests
const (
	TEST  Tselector = "TEST"
	TEST1 Tselector = "TEST1"
)

// Pipeline stages
const (
	INGEST       Tselector = "INGEST"
	INGEST_ERR             = INGEST + ERR
	LINESRC      Tselector = "LINESRC"
	WORKER       Tselector = "WORKER"
	ACCUM        Tselector = "ACCUM"
	ACCUM_ERR              = ACCUM + ERR
	RESEQ        Tselector = "RESEQ"
	RESEQ_ERR              = RESEQ + ERR
	MEDIAN       Tselector = "MEDIAN"
	MEDIAN_ERR             = MEDIAN + ERR
	PIPELINE     Tselector = "PIPELINE"
	PIPELINE_ERR           = PIPELINE + ERR
	QUEUE        Tselector = "QUEUE"
)

// Infrastructure
const (
	CONFIG  Tselector = "CONFIG"
	TRACING Tselector = "TRACING"
)
