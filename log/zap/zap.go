// Package zap adapts a zap logger to the cache Logger.
package zap

import (
	"go.uber.org/zap"

	condcache "github.com/GovThePPL/candid-sub001"
)

type Logger struct{ L *zap.Logger }

var _ condcache.Logger = Logger{}

func (z Logger) Debug(msg string, f condcache.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f condcache.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f condcache.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f condcache.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f condcache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
