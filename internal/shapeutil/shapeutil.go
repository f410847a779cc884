// Package shapeutil provides the reflection helpers behind the String, Equal and
// Hash methods of the SSM shapes.
package shapeutil

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
)

var timeType = reflect.TypeOf(time.Time{})

// Prettify renders a shape as {Name: value,Other: value}. Nil pointers, nil
// slices, nil maps and empty enum strings are omitted.
func Prettify(v interface{}) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback(v)
		}
	}()

	var b strings.Builder
	prettify(&b, reflect.ValueOf(v))
	return b.String()
}

// fallback renders v with Go syntax. %#v never calls String, which would
// otherwise re-enter Prettify.
func fallback(v interface{}) string {
	return fmt.Sprintf("%#v", v)
}

func prettify(b *strings.Builder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Invalid:
		b.WriteString("null")
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("null")
			return
		}
		prettify(b, v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			b.WriteString(v.Interface().(time.Time).UTC().Format(time.RFC3339Nano))
			return
		}
		b.WriteByte('{')
		first := true
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || isUnset(v.Field(i)) {
				continue
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(FieldName(f))
			b.WriteString(": ")
			prettify(b, v.Field(i))
		}
		b.WriteByte('}')
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			prettify(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		b.WriteByte('{')
		for i, k := range sortedKeys(v) {
			if i > 0 {
				b.WriteString(", ")
			}
			prettify(b, k)
			b.WriteByte('=')
			prettify(b, v.MapIndex(k))
		}
		b.WriteByte('}')
	case reflect.String:
		b.WriteString(v.String())
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	default:
		fmt.Fprintf(b, "%v", v.Interface())
	}
}

// isUnset reports whether a struct field counts as null.
func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

// FieldName returns the wire name of a struct field, falling back to the Go name.
func FieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

// Equal reports whether a and b hold the same field values. Two nil pointers
// are equal. A nil slice or map is not equal to an empty one, matching the null
// semantics of the wire.
//
// The comparison runs on the dereferenced values so that shapes whose pointer
// type declares Equal(*T) do not recurse into themselves.
func Equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b)
}

// Hash returns a field-wise hash of v. Values that are Equal hash identically;
// map iteration order does not influence the result.
func Hash(v interface{}) uint64 {
	d := xxhash.New()
	h := hasher{d: d}
	h.write(reflect.ValueOf(v))
	return d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [binary.MaxVarintLen64]byte
}

func (h *hasher) marker(b byte) {
	h.d.Write([]byte{b})
}

func (h *hasher) uvarint(n uint64) {
	l := binary.PutUvarint(h.buf[:], n)
	h.d.Write(h.buf[:l])
}

func (h *hasher) str(s string) {
	h.uvarint(uint64(len(s)))
	h.d.WriteString(s)
}

func (h *hasher) write(v reflect.Value) {
	switch v.Kind() {
	case reflect.Invalid:
		h.marker(0)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			h.marker(0)
			return
		}
		h.marker(1)
		h.write(v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			h.uvarint(uint64(v.Interface().(time.Time).UnixNano()))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				h.write(v.Field(i))
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			h.marker(0)
			return
		}
		h.marker(1)
		h.uvarint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			h.write(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			h.marker(0)
			return
		}
		h.marker(1)
		h.uvarint(uint64(v.Len()))
		for _, k := range sortedKeys(v) {
			h.write(k)
			h.write(v.MapIndex(k))
		}
	case reflect.String:
		h.str(v.String())
	case reflect.Bool:
		if v.Bool() {
			h.marker(1)
		} else {
			h.marker(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.uvarint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		h.uvarint(v.Uint())
	default:
		h.str(fmt.Sprint(v.Interface()))
	}
}
