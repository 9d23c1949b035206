package morse

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for morse events.
var (
	SignalRegistryLoaded      = capitan.NewSignal("morse.registry.loaded", "Registry built from a table asset")
	SignalReverseTableBuilt   = capitan.NewSignal("morse.reverse.built", "Reverse table built for a priority order")
	SignalReverseTableEvicted = capitan.NewSignal("morse.reverse.evicted", "Reverse table evicted from the cache")
	SignalTranslatorCreated   = capitan.NewSignal("morse.translator.created", "Translator instantiated")
	SignalEncodeComplete      = capitan.NewSignal("morse.encode.complete", "Encode operation finished")
	SignalDecodeComplete      = capitan.NewSignal("morse.decode.complete", "Decode operation finished")

	SignalFieldProcessorCreated = capitan.NewSignal("morse.fields.created", "Field processor instantiated")
)

// Keys for typed event data.
var (
	KeyVersion      = capitan.NewIntKey("version")
	KeyFingerprint  = capitan.NewStringKey("fingerprint")
	KeySets         = capitan.NewIntKey("sets")
	KeyEntries      = capitan.NewIntKey("entries")
	KeyOrder        = capitan.NewStringKey("order")
	KeyInputSize    = capitan.NewIntKey("input_size")
	KeyOutputSize   = capitan.NewIntKey("output_size")
	KeyInvalidCount = capitan.NewIntKey("invalid_count")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
	KeyTypeName     = capitan.NewStringKey("type")
	KeyFields       = capitan.NewIntKey("fields")
)

// emitRegistryLoaded emits an event when a registry is built or fails to build.
func emitRegistryLoaded(ctx context.Context, version int, fp string, sets, entries int, err error) {
	fields := []capitan.Field{
		KeyVersion.Field(version),
		KeyFingerprint.Field(fp),
		KeySets.Field(sets),
		KeyEntries.Field(entries),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRegistryLoaded, fields...)
	} else {
		capitan.Emit(ctx, SignalRegistryLoaded, fields...)
	}
}

// emitReverseTableBuilt emits an event when a reverse table is built.
func emitReverseTableBuilt(ctx context.Context, order string, entries int, duration time.Duration) {
	capitan.Emit(ctx, SignalReverseTableBuilt,
		KeyOrder.Field(order),
		KeyEntries.Field(entries),
		KeyDuration.Field(duration),
	)
}

// emitReverseTableEvicted emits an event when the cache drops a table.
func emitReverseTableEvicted(ctx context.Context, order string) {
	capitan.Emit(ctx, SignalReverseTableEvicted,
		KeyOrder.Field(order),
	)
}

// emitTranslatorCreated emits an event when a translator is created.
func emitTranslatorCreated(ctx context.Context, order, fp string) {
	capitan.Emit(ctx, SignalTranslatorCreated,
		KeyOrder.Field(order),
		KeyFingerprint.Field(fp),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, order string, in, out, invalid int, duration time.Duration) {
	capitan.Emit(ctx, SignalEncodeComplete,
		KeyOrder.Field(order),
		KeyInputSize.Field(in),
		KeyOutputSize.Field(out),
		KeyInvalidCount.Field(invalid),
		KeyDuration.Field(duration),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, order string, in, out, invalid int, duration time.Duration) {
	capitan.Emit(ctx, SignalDecodeComplete,
		KeyOrder.Field(order),
		KeyInputSize.Field(in),
		KeyOutputSize.Field(out),
		KeyInvalidCount.Field(invalid),
		KeyDuration.Field(duration),
	)
}

// emitFieldProcessorCreated emits an event when a field processor is created.
func emitFieldProcessorCreated(ctx context.Context, typeName string, fields int) {
	capitan.Emit(ctx, SignalFieldProcessorCreated,
		KeyTypeName.Field(typeName),
		KeyFields.Field(fields),
	)
}
