package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/statecraft-ledger/sdk/addressing"
)

const instrumentationName = "github.com/statecraft-ledger/sdk/telemetry"

// Deriver wraps an addressing.Deriver with OpenTelemetry spans and
// counters. It mirrors the six compute operations with context-taking
// variants and changes nothing about the derived addresses.
type Deriver struct {
	next        *addressing.Deriver
	tracer      trace.Tracer
	derivations metric.Int64Counter
}

// Option configures a Deriver.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider sets the TracerProvider used for derivation spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the MeterProvider used for the derivation
// counter. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WrapDeriver instruments next with spans and a derivation counter.
func WrapDeriver(next *addressing.Deriver, opts ...Option) (*Deriver, error) {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	derivations, err := o.meterProvider.Meter(instrumentationName).Int64Counter(
		"addressing.derivations",
		metric.WithDescription("Number of state address derivations, by entity type and outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &Deriver{
		next:        next,
		tracer:      o.tracerProvider.Tracer(instrumentationName),
		derivations: derivations,
	}, nil
}

// ComputeNamespaceRegistryAddress derives a namespace registry address,
// recording a span and counter sample.
func (d *Deriver) ComputeNamespaceRegistryAddress(ctx context.Context, namespace string) (addressing.Address, error) {
	return d.compute(ctx, "namespace_registry", func() (addressing.Address, error) {
		return d.next.ComputeNamespaceRegistryAddress(namespace)
	})
}

// ComputeContractRegistryAddress derives a contract registry address,
// recording a span and counter sample.
func (d *Deriver) ComputeContractRegistryAddress(ctx context.Context, name string) (addressing.Address, error) {
	return d.compute(ctx, "contract_registry", func() (addressing.Address, error) {
		return d.next.ComputeContractRegistryAddress(name)
	})
}

// ComputeContractAddress derives a contract address, recording a span
// and counter sample.
func (d *Deriver) ComputeContractAddress(ctx context.Context, name, version string) (addressing.Address, error) {
	return d.compute(ctx, "contract", func() (addressing.Address, error) {
		return d.next.ComputeContractAddress(name, version)
	})
}

// ComputeSmartPermissionAddress derives a smart permission address,
// recording a span and counter sample.
func (d *Deriver) ComputeSmartPermissionAddress(ctx context.Context, orgID, name string) (addressing.Address, error) {
	return d.compute(ctx, "smart_permission", func() (addressing.Address, error) {
		return d.next.ComputeSmartPermissionAddress(orgID, name)
	})
}

// ComputeAgentAddress derives an agent address, recording a span and
// counter sample.
func (d *Deriver) ComputeAgentAddress(ctx context.Context, name []byte) (addressing.Address, error) {
	return d.compute(ctx, "agent", func() (addressing.Address, error) {
		return d.next.ComputeAgentAddress(name)
	})
}

// ComputeOrganizationAddress derives an organization address, recording
// a span and counter sample.
func (d *Deriver) ComputeOrganizationAddress(ctx context.Context, id string) (addressing.Address, error) {
	return d.compute(ctx, "organization", func() (addressing.Address, error) {
		return d.next.ComputeOrganizationAddress(id)
	})
}

func (d *Deriver) compute(ctx context.Context, entity string, fn func() (addressing.Address, error)) (addressing.Address, error) {
	ctx, span := d.tracer.Start(ctx, "addressing.compute_"+entity+"_address",
		trace.WithAttributes(attribute.String("addressing.entity", entity)))
	defer span.End()

	addr, err := fn()

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	d.derivations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("addressing.entity", entity),
		attribute.String("addressing.outcome", outcome),
	))

	return addr, err
}
