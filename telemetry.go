package enumkit

import (
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/bearlytools/enumkit/errors"
)

var (
	metricsOnce   sync.Once
	parseFailures metric.Int64Counter
)

// initMetrics creates the instruments from the meter of a background context, so the
// counter does not depend on which caller fails a Parse first. Meters carried by Parse
// contexts are not used.
func initMetrics() {
	c, err := context.Meter(context.Background()).Int64Counter(
		"enumkit.parse.failures",
		metric.WithDescription("Number of Parse calls that returned an error"),
	)
	if err != nil {
		logger().Warn("enumkit: cannot create parse failure counter", zap.Error(err))
		return
	}
	parseFailures = c
}

func recordParseFailure(ctx context.Context, typeName string, reason errors.Type) {
	metricsOnce.Do(initMetrics)
	if parseFailures == nil {
		return
	}
	parseFailures.Add(
		ctx, 1,
		metric.WithAttributes(
			attribute.String("enum_type", typeName),
			attribute.String("reason", reason.String()),
		),
	)
}
