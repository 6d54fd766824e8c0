package tux

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/teilorr/tux"
)

var tracer trace.Tracer

func getTracer() trace.Tracer {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return tracer
}

// NewCardContext builds the same card as NewCard inside an
// OpenTelemetry span, recording the failure on the span when the build
// errors. The build itself never blocks and does not consume ctx.
func NewCardContext(ctx context.Context, cardType CardType, opts ...CardOption) (Card, error) {
	_, span := getTracer().Start(ctx, "tux.new_card",
		trace.WithAttributes(
			attribute.String("card.type", string(cardType)),
		))
	defer span.End()

	card, err := NewCard(cardType, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Card{}, err
	}

	span.SetAttributes(attribute.Int("card.color", card.Color))
	return card, nil
}
