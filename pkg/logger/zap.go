package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — конструктор; dev/prod конфигурация по флагу.
// Возвращает логгер и cleanup для Sync при завершении.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logg *zap.Logger
		err  error
	)

	if isProd {
		logg, err = zap.NewProduction()
	} else {
		logg, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	wrap := &ZapLogger{
		base:   logg,
		sugar:  logg.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return wrap.base.Sync() }
	return wrap, cleanup, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
