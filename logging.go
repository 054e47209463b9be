package fsv

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

// newLogger routes output to stdout and reads FSV_LOG_LEVEL when set.
func newLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if lvl, ok := os.LookupEnv("FSV_LOG_LEVEL"); ok {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			l.SetLevel(parsed)
		} else {
			l.Warnf("ignoring FSV_LOG_LEVEL=%q: %v", lvl, err)
		}
	}
	return l.WithField("component", "fsv")
}

// SetLogger replaces the logger used by the package.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	logger = l.WithField("component", "fsv")
}
