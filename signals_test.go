package morse

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitRegistryLoaded_Success(_ *testing.T) {
	// Should not panic
	emitRegistryLoaded(context.Background(), 1, "abc123", 12, 375, nil)
}

func TestEmitRegistryLoaded_Error(_ *testing.T) {
	emitRegistryLoaded(context.Background(), 1, "", 0, 0, errors.New("test error"))
}

func TestEmitReverseTableBuilt(_ *testing.T) {
	emitReverseTableBuilt(context.Background(), "latin,cyrillic", 42, 100*time.Microsecond)
}

func TestEmitReverseTableEvicted(_ *testing.T) {
	emitReverseTableEvicted(context.Background(), "greek")
}

func TestEmitTranslatorCreated(_ *testing.T) {
	emitTranslatorCreated(context.Background(), "latin", "abc123")
}

func TestEmitEncodeComplete(_ *testing.T) {
	emitEncodeComplete(context.Background(), "latin", 7, 23, 0, time.Millisecond)
}

func TestEmitDecodeComplete(_ *testing.T) {
	emitDecodeComplete(context.Background(), "latin", 23, 7, 1, time.Millisecond)
}

func TestEmitFieldProcessorCreated(_ *testing.T) {
	emitFieldProcessorCreated(context.Background(), "Message", 2)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalRegistryLoaded", SignalRegistryLoaded},
		{"SignalReverseTableBuilt", SignalReverseTableBuilt},
		{"SignalReverseTableEvicted", SignalReverseTableEvicted},
		{"SignalTranslatorCreated", SignalTranslatorCreated},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeComplete", SignalDecodeComplete},
		{"SignalFieldProcessorCreated", SignalFieldProcessorCreated},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyVersion", KeyVersion},
		{"KeyFingerprint", KeyFingerprint},
		{"KeySets", KeySets},
		{"KeyEntries", KeyEntries},
		{"KeyOrder", KeyOrder},
		{"KeyInputSize", KeyInputSize},
		{"KeyOutputSize", KeyOutputSize},
		{"KeyInvalidCount", KeyInvalidCount},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
		{"KeyTypeName", KeyTypeName},
		{"KeyFields", KeyFields},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
