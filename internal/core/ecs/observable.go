package ecs

import (
	"bytes"
	"reflect"
	"slices"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

type FieldKind uint8

const (
	// FieldData is a plain value, serialized as is.
	FieldData FieldKind = iota
	// FieldComponent references a DisposableComponent and serializes its id.
	FieldComponent
	// FieldReadonly is serialized but only settable through Init.
	FieldReadonly
)

func (k FieldKind) String() string {
	switch k {
	case FieldData:
		return "data"
	case FieldComponent:
		return "component"
	case FieldReadonly:
		return "readonly"
	default:
		return "unknown"
	}
}

type FieldDef struct {
	Name string
	Kind FieldKind
}

func Data(name string) FieldDef     { return FieldDef{Name: name, Kind: FieldData} }
func Ref(name string) FieldDef      { return FieldDef{Name: name, Kind: FieldComponent} }
func ReadOnly(name string) FieldDef { return FieldDef{Name: name, Kind: FieldReadonly} }

// Schema is the ordered list of declared fields of a component. Serialization
// follows this order.
type Schema []FieldDef

// Extend returns a new schema with extra fields appended.
func (s Schema) Extend(fields ...FieldDef) Schema {
	out := make(Schema, 0, len(s)+len(fields))
	out = append(out, s...)
	return append(out, fields...)
}

// ChangeFunc receives the field name with the new and previous values.
type ChangeFunc func(field string, newValue, oldValue any)

type subscriber struct {
	fn      ChangeFunc
	removed bool
}

// Observable stores the declared fields of a component and notifies
// subscribers on every effective mutation. Component types embed it.
type Observable struct {
	schema      Schema
	index       map[string]int
	values      []any
	subscribers []*subscriber
}

func NewObservable(schema Schema) *Observable {
	o := &Observable{
		schema: schema,
		index:  make(map[string]int, len(schema)),
		values: make([]any, len(schema)),
	}
	for i, f := range schema {
		o.index[f.Name] = i
	}
	return o
}

func (o *Observable) observable() *Observable { return o }

func (o *Observable) Schema() Schema { return o.schema }

// Get returns the current value of a declared field, or nil.
func (o *Observable) Get(name string) any {
	i, ok := o.index[name]
	if !ok {
		return nil
	}
	return o.values[i]
}

// Set assigns a declared field. Subscribers are notified in subscription
// order when the value actually changes. Passing the slice or map already
// stored counts as a change, since it may have been mutated in place.
func (o *Observable) Set(name string, value any) error {
	i, ok := o.index[name]
	if !ok {
		return eris.Wrapf(ErrUnknownField, "field %q", name)
	}
	def := o.schema[i]
	if def.Kind == FieldReadonly {
		return eris.Wrapf(ErrReadonlyField, "field %q", name)
	}
	value, err := normalize(def, value)
	if err != nil {
		return err
	}

	old := o.values[i]
	if !sharesBacking(old, value) && equalValues(old, value) {
		return nil
	}
	o.values[i] = value
	o.notify(name, value, old)
	return nil
}

// MustSet is Set for fields whose name and kind are known at compile time.
// It panics on contract violations.
func (o *Observable) MustSet(name string, value any) {
	if err := o.Set(name, value); err != nil {
		panic(err)
	}
}

// Init assigns a field without notifying subscribers. It also accepts
// read-only fields, so constructors use it for defaults. Undeclared names and
// invalid references panic.
func (o *Observable) Init(name string, value any) {
	i, ok := o.index[name]
	if !ok {
		panic(eris.Wrapf(ErrUnknownField, "field %q", name))
	}
	value, err := normalize(o.schema[i], value)
	if err != nil {
		panic(err)
	}
	o.values[i] = value
}

// Touch notifies subscribers about field without changing it.
func (o *Observable) Touch(name string) {
	if i, ok := o.index[name]; ok {
		o.notify(name, o.values[i], o.values[i])
	}
}

// OnChange registers fn and returns a function that removes it.
func (o *Observable) OnChange(fn ChangeFunc) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s := &subscriber{fn: fn}
	o.subscribers = append(o.subscribers, s)
	return func() {
		if s.removed {
			return
		}
		s.removed = true
		o.subscribers = slices.DeleteFunc(slices.Clone(o.subscribers), func(x *subscriber) bool { return x == s })
	}
}

// Subscribers reports how many change callbacks are registered.
func (o *Observable) Subscribers() int { return len(o.subscribers) }

func (o *Observable) notify(name string, value, old any) {
	for _, s := range o.subscribers {
		if !s.removed {
			s.fn(name, value, old)
		}
	}
}

// ToJSON snapshots the declared fields in schema order. Component fields are
// replaced by the referenced component id, or nil.
func (o *Observable) ToJSON() Snapshot {
	snap := make(Snapshot, len(o.schema))
	for i, def := range o.schema {
		v := o.values[i]
		if def.Kind == FieldComponent {
			v = referenceID(v)
		}
		snap[i] = SnapshotField{Name: def.Name, Value: v}
	}
	return snap
}

// References returns the disposable components referenced by component fields.
func (o *Observable) References() []DisposableComponent {
	var refs []DisposableComponent
	for i, def := range o.schema {
		if def.Kind != FieldComponent {
			continue
		}
		if d, ok := o.values[i].(DisposableComponent); ok {
			refs = append(refs, d)
		}
	}
	return refs
}

func normalize(def FieldDef, value any) (any, error) {
	if isNil(value) {
		return nil, nil
	}
	if def.Kind == FieldComponent {
		if _, ok := value.(DisposableComponent); !ok {
			return nil, eris.Wrapf(ErrInvalidReference, "field %q got %T", def.Name, value)
		}
	}
	return value, nil
}

func referenceID(v any) any {
	d, ok := v.(DisposableComponent)
	if !ok || d.ComponentID() == "" {
		return nil
	}
	return d.ComponentID()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if t.Kind() == reflect.Pointer {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// sharesBacking reports whether a and b are the same non-empty slice or map.
func sharesBacking(a, b any) bool {
	if a == nil || b == nil || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice, reflect.Map:
		return va.Len() > 0 && va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// SnapshotField is one serialized field.
type SnapshotField struct {
	Name  string
	Value any
}

// Snapshot is the serialized state of a component. It marshals to a JSON
// object whose keys keep schema order, so equal states always produce equal
// bytes.
type Snapshot []SnapshotField

// Get returns the value stored for name.
func (s Snapshot) Get(name string) (any, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (s Snapshot) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Name
	}
	return keys
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, eris.Wrapf(err, "marshal key %q", f.Name)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, eris.Wrapf(err, "marshal field %q", f.Name)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
