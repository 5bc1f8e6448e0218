package normalizer

import (
	"context"

	"github.com/leofalp/answerkit/internal/utils"
	"github.com/leofalp/answerkit/providers/observability"
)

// call tracks the span, timer and observer of one Normalizer method.
type call struct {
	ctx       context.Context
	operation string
	observer  observability.Provider
	span      observability.Span
	timer     *utils.Timer
}

func (n *Normalizer) begin(ctx context.Context, operation, raw string, attrs ...observability.Attribute) *call {
	observer := n.observer(ctx)

	attrs = append([]observability.Attribute{
		observability.Int(observability.AttrAnswerLength, len(raw)),
	}, attrs...)
	ctx, span := observer.StartSpan(ctx, operation, attrs...)
	ctx = observability.ContextWithObserver(ctx, observer)

	observer.Debug(ctx, operation,
		append(attrs, observability.String(observability.AttrAnswerPreview, utils.Preview(raw)))...,
	)

	return &call{
		ctx:       ctx,
		operation: operation,
		observer:  observer,
		span:      span,
		timer:     utils.NewTimer(),
	}
}

// finish records the outcome of the call and ends its span.
func (c *call) finish(err error, attrs ...observability.Attribute) {
	c.timer.Stop()

	status := "ok"
	if err != nil {
		status = "error"
		c.span.RecordError(err)
		c.span.SetStatus(observability.StatusError, c.operation+" failed")
		c.observer.Warn(c.ctx, c.operation+" failed",
			observability.Error(err),
			observability.Duration(observability.AttrDuration, c.timer.GetDuration()),
		)
	} else {
		c.span.SetAttributes(attrs...)
		c.span.SetStatus(observability.StatusOK, "")
		c.observer.Debug(c.ctx, c.operation+" done",
			append(attrs, observability.Duration(observability.AttrDuration, c.timer.GetDuration()))...,
		)
	}
	c.span.End()

	operation := observability.String(observability.AttrOperation, c.operation)
	c.observer.Counter(observability.MetricOperationCount).Add(c.ctx, 1,
		operation,
		observability.String(observability.AttrStatus, status),
	)
	c.observer.Histogram(observability.MetricOperationDuration).Record(c.ctx, c.timer.Milliseconds(), operation)
}
