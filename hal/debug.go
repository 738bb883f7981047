package hal

import (
	"encoding/hex"
	"strings"
)

// Logger is the interface used for debug messages.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nullLoggerImpl struct{}

func (nullLoggerImpl) Printf(format string, args ...interface{}) {}

// nullLogger is a logger that does nothing.
var nullLogger = nullLoggerImpl{}

// getLogger always returns a logger.
func getLogger(l Logger) Logger {
	if l == nil {
		return nullLogger
	}
	return l
}

// hexDump lazily formats binary data, matching `hexdump -C`.
type hexDump []byte

func (h hexDump) String() string {
	var buf strings.Builder
	buf.WriteByte('\n')
	d := hex.Dumper(&buf)
	_, _ = d.Write([]byte(h))
	_ = d.Close()
	return buf.String()
}
