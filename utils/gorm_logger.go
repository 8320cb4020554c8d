package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// gormWriter adapts a sugared zap logger to GORM's logger.Writer.
type gormWriter struct {
	sugar *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.sugar.Info(fmt.Sprintf(format, args...))
}

// NewGormLogger returns a GORM logger that writes through zap.
func NewGormLogger(sugar *zap.SugaredLogger, level logger.LogLevel) logger.Interface {
	return logger.New(gormWriter{sugar: sugar.Named("gorm")}, logger.Config{
		SlowThreshold:             2 * time.Second, // consider slower queries only
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
