package morse

import (
	"context"
	"time"
)

// Translator encodes and decodes with a fixed, validated configuration.
// Translators are immutable and safe for concurrent use.
type Translator struct {
	opts      Options
	order     PriorityOrder
	signature string
}

// New creates a Translator. Unset options take their defaults; the
// result is validated with Options.Validate.
func New(opts ...Option) (*Translator, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	o = o.withDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}

	t := &Translator{
		opts:      o,
		order:     o.lookupOrder(),
		signature: o.Priority.Signature(),
	}

	emitTranslatorCreated(context.Background(), t.signature, o.Registry.Fingerprint())
	return t, nil
}

// Encode translates text to Morse. Words are split on whitespace runs,
// letters are upper-cased before lookup, and unmappable characters go
// through the configured invalid handler.
func (t *Translator) Encode(ctx context.Context, text string) string {
	start := time.Now()
	out, invalid := encode(text, t.opts)
	emitEncodeComplete(ctx, t.signature, len(text), len(out), invalid, time.Since(start))
	return out
}

// Decode translates Morse to text. Decoded words are joined with a single
// space; undecodable tokens go through the configured invalid handler.
func (t *Translator) Decode(ctx context.Context, code string) string {
	start := time.Now()
	out, invalid := decode(ctx, code, t.opts)
	emitDecodeComplete(ctx, t.signature, len(code), len(out), invalid, time.Since(start))
	return out
}

// Options returns a copy of the translator configuration.
func (t *Translator) Options() Options {
	o := t.opts
	o.Priority = o.Priority.clone()
	return o
}

// Registry returns the tables the translator uses.
func (t *Translator) Registry() *Registry {
	return t.opts.Registry
}

// Characters returns every loaded table rendered with the translator's
// glyphs, keyed by set and then by character.
func (t *Translator) Characters() map[CharacterSet]map[string]string {
	return characters(t.opts)
}

func characters(o Options) map[CharacterSet]map[string]string {
	out := make(map[CharacterSet]map[string]string)
	for _, cs := range o.Registry.Sets() {
		entries := o.Registry.entries[cs]
		rendered := make(map[string]string, len(entries))
		for _, e := range entries {
			rendered[e.Char] = e.Code.Render(o.Dot, o.Dash)
		}
		out[cs] = rendered
	}
	return out
}
