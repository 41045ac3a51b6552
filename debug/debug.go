package debug

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//
// Debug output is controled by TWEETDEBUG environment variable, which
// can be a list of labels (e.g., "RESEQ;MEDIAN").
//

const TWEETDEBUG = "TWEETDEBUG"

var (
	once   sync.Once
	labels map[Tselector]bool
	logger *zap.SugaredLogger
)

func initLogger() {
	labels = debugLabels(os.Getenv(TWEETDEBUG))
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	cfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	logger = zap.New(core).Sugar()
}

func debugLabels(s string) map[Tselector]bool {
	m := make(map[Tselector]bool)
	if s == "" {
		return m
	}
	for _, l := range strings.Split(s, ";") {
		m[Tselector(l)] = true
	}
	return m
}

// SetLabels replaces the labels read from TWEETDEBUG. Used by tests
// and by the -debug flag.
func SetLabels(s string) {
	once.Do(initLogger)
	labels = debugLabels(s)
}

func WillBePrinted(label Tselector) bool {
	once.Do(initLogger)
	_, ok := labels[label]
	return ok || label == ALWAYS
}

func DPrintf(label Tselector, format string, v ...interface{}) {
	if WillBePrinted(label) {
		logger.Infof("%v %v", label, fmt.Sprintf(format, v...))
	}
}

func DFatalf(format string, v ...interface{}) {
	once.Do(initLogger)
	// Get info for the caller.
	pc, file, line, ok := runtime.Caller(1)
	fnDetails := runtime.FuncForPC(pc)
	if ok && fnDetails != nil {
		logger.Fatalf("FATAL %v %v:%v %v", fnDetails.Name(), file, line, fmt.Sprintf(format, v...))
	} else {
		logger.Fatalf("FATAL (missing details) %v", fmt.Sprintf(format, v...))
	}
}

// Sync flushes any buffered log output.
func Sync() {
	once.Do(initLogger)
	logger.Sync()
}
