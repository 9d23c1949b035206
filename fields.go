package morse

import (
	"context"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// tagKey is the struct tag read by the field processor.
const tagKey = "morse"

// TagText marks a string field holding plain text. EncodeFields replaces
// its value with Morse and DecodeFields turns it back into text.
const TagText = "text"

func init() {
	sentinel.Tag(tagKey)
}

// FieldProcessor encodes and decodes the tagged string fields of T with a
// Translator. Supported fields are string, *string and []string, at the
// top level or inside nested structs and struct pointers:
//
//	type Message struct {
//	    ID   string
//	    Body string `morse:"text"`
//	}
//
// Processors are safe for concurrent use.
type FieldProcessor[T Cloner[T]] struct {
	translator *Translator
	plans      []fieldPlan
	typeName   string
}

type fieldKind uint8

const (
	fieldString fieldKind = iota
	fieldStringPtr
	fieldStringSlice
)

// fieldPlan describes how to reach and transform a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.Field access path
	name       string // dotted field name for error messages
	kind       fieldKind
	ptrIndices []int // positions in index where a pointer is dereferenced
}

// typeFieldPlans is the scan result for one type.
type typeFieldPlans struct {
	typeName string
	fields   []fieldPlan
}

var (
	planCache   = make(map[reflect.Type]*typeFieldPlans)
	planCacheMu sync.RWMutex
)

// NewFieldProcessor creates a FieldProcessor for T. Field plans are built
// once per type; a tag value other than "text" fails with ErrInvalidTag.
func NewFieldProcessor[T Cloner[T]](t *Translator) (*FieldProcessor[T], error) {
	if t == nil {
		return nil, newConfigError(ErrInvalidOptions, "translator", "")
	}

	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &FieldProcessor[T]{
		translator: t,
		plans:      plans.fields,
		typeName:   plans.typeName,
	}

	emitFieldProcessorCreated(context.Background(), plans.typeName, len(plans.fields))
	return p, nil
}

// Fields returns the dotted names of the fields the processor transforms.
func (p *FieldProcessor[T]) Fields() []string {
	names := make([]string, len(p.plans))
	for i, plan := range p.plans {
		names[i] = plan.name
	}
	return names
}

// EncodeFields returns a clone of obj with every tagged field encoded to
// Morse. obj itself is not modified. A nil obj returns nil.
func (p *FieldProcessor[T]) EncodeFields(ctx context.Context, obj *T) (*T, error) {
	return p.transform(ctx, obj, OpEncode)
}

// DecodeFields returns a clone of obj with every tagged field decoded from
// Morse. obj itself is not modified. A nil obj returns nil.
func (p *FieldProcessor[T]) DecodeFields(ctx context.Context, obj *T) (*T, error) {
	return p.transform(ctx, obj, OpDecode)
}

func (p *FieldProcessor[T]) transform(ctx context.Context, obj *T, op Op) (*T, error) {
	if obj == nil {
		return nil, nil
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	switch op {
	case OpEncode:
		if e, ok := any(&clone).(Encodable); ok {
			if err := e.EncodeMorse(ctx, p.translator); err != nil {
				return nil, newTransformError(ErrTransform, op.String(), "", err)
			}
			return &clone, nil
		}
	case OpDecode:
		if d, ok := any(&clone).(Decodable); ok {
			if err := d.DecodeMorse(ctx, p.translator); err != nil {
				return nil, newTransformError(ErrTransform, op.String(), "", err)
			}
			return &clone, nil
		}
	}

	apply := p.translator.Encode
	if op == OpDecode {
		apply = p.translator.Decode
	}

	rv := reflect.ValueOf(&clone).Elem()
	for _, plan := range p.plans {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		switch plan.kind {
		case fieldStringSlice:
			if field.IsNil() {
				continue
			}
			// Copy so a shallow Clone does not share the backing array.
			out := reflect.MakeSlice(field.Type(), field.Len(), field.Len())
			for i := 0; i < field.Len(); i++ {
				out.Index(i).SetString(apply(ctx, field.Index(i).String()))
			}
			field.Set(out)

		case fieldStringPtr:
			if field.IsNil() {
				continue
			}
			v := reflect.New(field.Type().Elem())
			v.Elem().SetString(apply(ctx, field.Elem().String()))
			field.Set(v)

		default:
			if field.CanSet() {
				field.SetString(apply(ctx, field.String()))
			}
		}
	}

	return &clone, nil
}

// getOrBuildPlans returns cached field plans for T, building them on first use.
func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	planCacheMu.RLock()
	if cached, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := planCache[typ]; ok {
		return cached, nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}
	planCache[typ] = plans
	return plans, nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, "", map[reflect.Type]bool{}); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive processes fields and descends into nested structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string, seen map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		rt := field.ReflectType
		val, tagged := field.Tags[tagKey]

		if !tagged {
			// Untagged structs may hold tagged fields.
			var nested reflect.Type
			var nestedPtr []int
			switch {
			case field.Kind == sentinel.KindStruct:
				nested, nestedPtr = rt, ptrIndices
			case field.Kind == sentinel.KindPointer && rt.Elem().Kind() == reflect.Struct:
				nested = rt.Elem()
				nestedPtr = append(append([]int{}, ptrIndices...), len(fullIndex)-1)
			}
			if nested == nil || seen[nested] {
				continue
			}
			nestedSpec := scanNestedType(nested)
			if nestedSpec == nil {
				continue
			}
			seen[nested] = true
			err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, nestedPtr, fullName, seen)
			delete(seen, nested)
			if err != nil {
				return err
			}
			continue
		}

		if val != TagText {
			return newConfigError(ErrInvalidTag, fullName, val)
		}

		plan := fieldPlan{
			index:      fullIndex,
			name:       fullName,
			ptrIndices: ptrIndices,
		}
		switch {
		case rt.Kind() == reflect.String:
			plan.kind = fieldString
		case rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.String:
			plan.kind = fieldStringPtr
		case rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String:
			plan.kind = fieldStringSlice
		default:
			return newConfigError(ErrInvalidTag, fullName, rt.String())
		}
		plans.fields = append(plans.fields, plan)
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(tagKey); ok {
			fm.Tags[tagKey] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// getField walks plan.index, dereferencing pointers at plan.ptrIndices.
// It reports false when a pointer on the path is nil.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}

// resetPlanCache clears cached field plans.
func resetPlanCache() {
	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	planCache = make(map[reflect.Type]*typeFieldPlans)
}
