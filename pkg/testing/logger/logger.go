// Package logger holds a go-kit logger that writes through testing.T.
package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
)

var _ log.Logger = &TestLogger{}

// TestLogger renders each event as a logfmt line and hands it to T.Log, so
// interpreter and app events show up next to the failing assertion.
type TestLogger struct {
	T *testing.T
}

func (t *TestLogger) Log(keyvals ...interface{}) error {
	var buf bytes.Buffer
	if err := log.NewLogfmtLogger(&buf).Log(keyvals...); err != nil {
		return err
	}
	t.T.Log(strings.TrimSuffix(buf.String(), "\n"))
	return nil
}
