package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// LogrusAdapter adapts a logrus logger to the jaeger logging interface
type LogrusAdapter struct {
	logger *logrus.Logger
}

// Error logs an error message
func (a LogrusAdapter) Error(msg string) {
	a.logger.Error(msg)
}

// Infof logs an informational message
func (a LogrusAdapter) Infof(msg string, args ...interface{}) {
	a.logger.Infof(msg, args...)
}

// InitTracer initializes the global jaeger tracer for the service
func InitTracer(l *logrus.Logger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := jaegercfg.FromEnv()
		if err != nil {
			return nil, err
		}
		cfg.ServiceName = serviceName
		if cfg.Sampler.Type == "" {
			cfg.Sampler.Type = jaeger.SamplerTypeConst
			cfg.Sampler.Param = 1
		}

		tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(LogrusAdapter{logger: l}))
		if err != nil {
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

// Teardown closes the tracer, logging any failure
func Teardown(l logrus.FieldLogger) func(closer io.Closer) func() {
	return func(closer io.Closer) func() {
		return func() {
			if err := closer.Close(); err != nil {
				l.WithError(err).Error("Unable to close tracer.")
			}
		}
	}
}

// StartSpan starts a named span and returns a logger carrying the span context
func StartSpan(l logrus.FieldLogger, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span) {
	span := opentracing.StartSpan(name, opts...)
	sl := l.WithField("span", name)
	return sl, span
}
