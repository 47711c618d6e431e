// Package telemetry provides an OpenTelemetry decorator for address
// derivation.
//
// The addressing core is pure and carries no instrumentation of its
// own. Deriver wraps an addressing.Deriver with one span per derivation
// and an addressing.derivations counter, attributed by entity type and
// outcome. Wrap only where the surrounding service already runs an
// OpenTelemetry pipeline; the decorator defaults to the global tracer
// and meter providers, which are no-ops unless configured.
package telemetry
