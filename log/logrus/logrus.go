// Package logrus adapts a logrus entry to the cache Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	condcache "github.com/GovThePPL/candid-sub001"
)

type Logger struct{ E *logrus.Entry }

var _ condcache.Logger = Logger{}

func (l Logger) Debug(msg string, f condcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f condcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f condcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f condcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
