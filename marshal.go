package byteconv

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// The reflection layer encodes values by structure: scalars as their fixed
// widths, strings, slices and maps behind a uint32 element count, arrays as
// a count that must match their length, and structs field by field in
// declaration order. Types take over their own encoding by implementing
// encoding.BinaryMarshaler, and their decoding by implementing io.ReaderFrom
// (self-delimiting) or encoding.BinaryUnmarshaler plus Sizer (fixed size).

var (
	marshalerType   = reflect.TypeOf((*encoding.BinaryMarshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*encoding.BinaryUnmarshaler)(nil)).Elem()
	readerFromType  = reflect.TypeOf((*io.ReaderFrom)(nil)).Elem()
	byteType        = reflect.TypeOf(byte(0))
)

// Marshal encodes vs back to back in the package default Order and
// returns the encoded bytes. The result length always equals SizeOf of
// the same values.
func Marshal(vs ...any) ([]byte, error) {
	size, err := SizeOf(vs...)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, size)
	for _, v := range vs {
		out, err = appendAny(out, Order, v)
		if err != nil {
			return nil, err
		}
	}
	if len(out) != size {
		return nil, errSizeMismatch(size, len(out))
	}
	return out, nil
}

// Append encodes vs back to back in the given byte order, appending to
// dst. On error dst is returned at its original length.
func Append(dst []byte, order binary.ByteOrder, vs ...any) ([]byte, error) {
	mark := len(dst)
	var err error
	for _, v := range vs {
		dst, err = appendAny(dst, order, v)
		if err != nil {
			return dst[:mark], err
		}
	}
	return dst, nil
}

// Unmarshal decodes data into ptrs in the package default Order. Every
// destination must be a non-nil pointer. The input must be consumed
// exactly: leftover bytes fail with ErrTrailingData.
func Unmarshal(data []byte, ptrs ...any) error {
	view := NewView(data)
	if err := view.ReadValue(ptrs...); err != nil {
		return err
	}
	if n := view.Available(); n > 0 {
		return fmt.Errorf("%w: %d bytes remain", ErrTrailingData, n)
	}
	return nil
}

// SizeOf returns the number of bytes Marshal would produce for vs.
// It never writes, so reserving space with it is cheap for scalar-heavy
// values; marshaler-hooked types without a Size method are encoded once
// to measure them.
func SizeOf(vs ...any) (int, error) {
	total := 0
	for _, v := range vs {
		n, err := sizeAny(v)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func errSizeMismatch(want, got int) error {
	return fmt.Errorf("byteconv: inconsistent size: Size reported %d bytes, encoding produced %d", want, got)
}

// --- Struct Plans ---

// structPlan records which fields of a struct participate in the encoding.
// Unexported fields and fields tagged `byteconv:"-"` are skipped.
type structPlan struct {
	fields []int
}

var planCache = xsync.NewMap[reflect.Type, *structPlan]()

func planOf(t reflect.Type) *structPlan {
	if p, ok := planCache.Load(t); ok {
		return p
	}
	p := &structPlan{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("byteconv") == "-" {
			continue
		}
		p.fields = append(p.fields, i)
	}
	planCache.Store(t, p)
	return p
}

// --- Custom Codec Hooks ---

// asMarshaler reports the BinaryMarshaler for v, following the pointer
// method set and copying non-addressable values when necessary.
func asMarshaler(v reflect.Value) (encoding.BinaryMarshaler, bool) {
	t := v.Type()
	if t.Implements(marshalerType) {
		return v.Interface().(encoding.BinaryMarshaler), true
	}
	if reflect.PointerTo(t).Implements(marshalerType) {
		if v.CanAddr() {
			return v.Addr().Interface().(encoding.BinaryMarshaler), true
		}
		p := reflect.New(t)
		p.Elem().Set(v)
		return p.Interface().(encoding.BinaryMarshaler), true
	}
	return nil, false
}

// --- Encoding ---

func appendAny(dst []byte, order binary.ByteOrder, v any) ([]byte, error) {
	if v == nil {
		return dst, fmt.Errorf("%w: nil interface", ErrUnsupportedType)
	}
	return appendValue(dst, order, reflect.ValueOf(v))
}

func appendCount(dst []byte, order binary.ByteOrder, n int) ([]byte, error) {
	if uint64(n) > math.MaxUint32 {
		return dst, ErrLengthOverflow
	}
	var tmp [4]byte
	order.PutUint32(tmp[:], uint32(n))
	return append(dst, tmp[:]...), nil
}

func appendValue(dst []byte, order binary.ByteOrder, v reflect.Value) ([]byte, error) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return dst, ErrNilPointer
	}
	if m, ok := asMarshaler(v); ok {
		b, err := m.MarshalBinary()
		if err != nil {
			return dst, err
		}
		return append(dst, b...), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil

	case reflect.Int8:
		return append(dst, byte(v.Int())), nil
	case reflect.Int16:
		var tmp [2]byte
		order.PutUint16(tmp[:], uint16(v.Int()))
		return append(dst, tmp[:]...), nil
	case reflect.Int32:
		var tmp [4]byte
		order.PutUint32(tmp[:], uint32(v.Int()))
		return append(dst, tmp[:]...), nil
	case reflect.Int64:
		var tmp [8]byte
		order.PutUint64(tmp[:], uint64(v.Int()))
		return append(dst, tmp[:]...), nil

	case reflect.Uint8:
		return append(dst, byte(v.Uint())), nil
	case reflect.Uint16:
		var tmp [2]byte
		order.PutUint16(tmp[:], uint16(v.Uint()))
		return append(dst, tmp[:]...), nil
	case reflect.Uint32:
		var tmp [4]byte
		order.PutUint32(tmp[:], uint32(v.Uint()))
		return append(dst, tmp[:]...), nil
	case reflect.Uint64:
		var tmp [8]byte
		order.PutUint64(tmp[:], v.Uint())
		return append(dst, tmp[:]...), nil

	case reflect.Float32:
		var tmp [4]byte
		order.PutUint32(tmp[:], math.Float32bits(float32(v.Float())))
		return append(dst, tmp[:]...), nil
	case reflect.Float64:
		var tmp [8]byte
		order.PutUint64(tmp[:], math.Float64bits(v.Float()))
		return append(dst, tmp[:]...), nil

	case reflect.Complex64:
		c := v.Complex()
		var tmp [8]byte
		order.PutUint32(tmp[:4], math.Float32bits(float32(real(c))))
		order.PutUint32(tmp[4:], math.Float32bits(float32(imag(c))))
		return append(dst, tmp[:]...), nil
	case reflect.Complex128:
		c := v.Complex()
		var tmp [16]byte
		order.PutUint64(tmp[:8], math.Float64bits(real(c)))
		order.PutUint64(tmp[8:], math.Float64bits(imag(c)))
		return append(dst, tmp[:]...), nil

	case reflect.String:
		dst, err := appendCount(dst, order, v.Len())
		if err != nil {
			return dst, err
		}
		return append(dst, v.String()...), nil

	case reflect.Slice:
		dst, err := appendCount(dst, order, v.Len())
		if err != nil {
			return dst, err
		}
		if v.Type().Elem() == byteType {
			return append(dst, v.Bytes()...), nil
		}
		for i := 0; i < v.Len(); i++ {
			dst, err = appendValue(dst, order, v.Index(i))
			if err != nil {
				return dst, err
			}
		}
		return dst, nil

	case reflect.Array:
		dst, err := appendCount(dst, order, v.Len())
		if err != nil {
			return dst, err
		}
		if v.Type().Elem() == byteType {
			if v.CanAddr() {
				return append(dst, v.Bytes()...), nil
			}
			tmp := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(tmp), v)
			return append(dst, tmp...), nil
		}
		for i := 0; i < v.Len(); i++ {
			dst, err = appendValue(dst, order, v.Index(i))
			if err != nil {
				return dst, err
			}
		}
		return dst, nil

	case reflect.Map:
		dst, err := appendCount(dst, order, v.Len())
		if err != nil {
			return dst, err
		}
		iter := v.MapRange()
		for iter.Next() {
			dst, err = appendValue(dst, order, iter.Key())
			if err != nil {
				return dst, err
			}
			dst, err = appendValue(dst, order, iter.Value())
			if err != nil {
				return dst, err
			}
		}
		return dst, nil

	case reflect.Struct:
		plan := planOf(v.Type())
		var err error
		for _, i := range plan.fields {
			dst, err = appendValue(dst, order, v.Field(i))
			if err != nil {
				return dst, err
			}
		}
		return dst, nil

	case reflect.Pointer:
		return appendValue(dst, order, v.Elem())
	}

	return dst, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}

// --- Sizing ---

func sizeAny(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil interface", ErrUnsupportedType)
	}
	return sizeValue(reflect.ValueOf(v))
}

func sizeValue(v reflect.Value) (int, error) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return 0, ErrNilPointer
	}
	if m, ok := asMarshaler(v); ok {
		// A Size method settles it without encoding; otherwise measure once.
		if s, ok := m.(Sizer); ok {
			return s.Size(), nil
		}
		b, err := m.MarshalBinary()
		if err != nil {
			return 0, err
		}
		return len(b), nil
	}

	switch v.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1, nil
	case reflect.Int16, reflect.Uint16:
		return 2, nil
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4, nil
	case reflect.Int64, reflect.Uint64, reflect.Float64, reflect.Complex64:
		return 8, nil
	case reflect.Complex128:
		return 16, nil

	case reflect.String:
		return 4 + v.Len(), nil

	case reflect.Slice, reflect.Array:
		if v.Type().Elem() == byteType {
			return 4 + v.Len(), nil
		}
		if fixed := fixedKindSize(v.Type().Elem()); fixed > 0 {
			return 4 + v.Len()*fixed, nil
		}
		total := 4
		for i := 0; i < v.Len(); i++ {
			n, err := sizeValue(v.Index(i))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil

	case reflect.Map:
		total := 4
		iter := v.MapRange()
		for iter.Next() {
			n, err := sizeValue(iter.Key())
			if err != nil {
				return 0, err
			}
			total += n
			n, err = sizeValue(iter.Value())
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil

	case reflect.Struct:
		plan := planOf(v.Type())
		total := 0
		for _, i := range plan.fields {
			n, err := sizeValue(v.Field(i))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil

	case reflect.Pointer:
		return sizeValue(v.Elem())
	}

	return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}

// fixedKindSize returns the encoded width of t when every value of t
// occupies the same number of bytes and t has no codec hooks, else 0.
func fixedKindSize(t reflect.Type) int {
	if t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType) {
		return 0
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64, reflect.Complex64:
		return 8
	case reflect.Complex128:
		return 16
	}
	return 0
}

// --- Decoding ---

func decodeAny(view *View, ptr any) error {
	if ptr == nil {
		return ErrNotPointer
	}
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	// Decode into a fresh value and assign only on success, so a failed
	// read cannot leave the destination half filled.
	tmp := reflect.New(rv.Type().Elem()).Elem()
	if err := decodeValue(view, tmp); err != nil {
		return err
	}
	rv.Elem().Set(tmp)
	return nil
}

// decodeCount reads the uint32 element count the encoder put in front of
// strings, slices and maps.
func decodeCount(view *View) (int, error) {
	n, err := view.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func decodeValue(view *View, v reflect.Value) error {
	pt := reflect.PointerTo(v.Type())
	if v.Kind() != reflect.Pointer {
		if pt.Implements(readerFromType) {
			_, err := v.Addr().Interface().(io.ReaderFrom).ReadFrom(view)
			return err
		}
		if pt.Implements(unmarshalerType) {
			u := v.Addr().Interface().(encoding.BinaryUnmarshaler)
			if s, ok := u.(Sizer); ok {
				p, err := view.Next(s.Size())
				if err != nil {
					return err
				}
				return u.UnmarshalBinary(p)
			}
			return fmt.Errorf("%w: %s implements encoding.BinaryUnmarshaler but neither io.ReaderFrom nor Sizer, so its encoded size is unknown", ErrUnsupportedType, v.Type())
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := view.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		width := int(v.Type().Size())
		u, err := view.ReadUintN(width)
		if err != nil {
			return err
		}
		v.SetInt(signExtend(u, width))
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := view.ReadUintN(int(v.Type().Size()))
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.Float32:
		f, err := view.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
		return nil
	case reflect.Float64:
		f, err := view.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil

	case reflect.Complex64:
		re, err := view.ReadFloat32()
		if err != nil {
			return err
		}
		im, err := view.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetComplex(complex(float64(re), float64(im)))
		return nil
	case reflect.Complex128:
		re, err := view.ReadFloat64()
		if err != nil {
			return err
		}
		im, err := view.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetComplex(complex(re, im))
		return nil

	case reflect.String:
		s, err := view.ReadVarString(4)
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil

	case reflect.Slice:
		n, err := decodeCount(view)
		if err != nil {
			return err
		}
		t := v.Type()
		if t.Elem() == byteType {
			p, err := view.Next(n)
			if err != nil {
				return err
			}
			out := make([]byte, n)
			copy(out, p)
			v.Set(reflect.ValueOf(out).Convert(t))
			return nil
		}
		// Grow as elements actually decode, so a hostile count cannot
		// force a huge allocation up front.
		capHint := n
		if capHint > 4096 {
			capHint = 4096
		}
		out := reflect.MakeSlice(t, 0, capHint)
		for i := 0; i < n; i++ {
			e := reflect.New(t.Elem()).Elem()
			if err := decodeValue(view, e); err != nil {
				return err
			}
			out = reflect.Append(out, e)
		}
		v.Set(out)
		return nil

	case reflect.Array:
		n, err := decodeCount(view)
		if err != nil {
			return err
		}
		if n != v.Len() {
			return fmt.Errorf("%w: input holds %d elements, array holds %d", ErrArrayLength, n, v.Len())
		}
		if v.Type().Elem() == byteType {
			p, err := view.Next(n)
			if err != nil {
				return err
			}
			copy(v.Bytes(), p)
			return nil
		}
		for i := 0; i < n; i++ {
			if err := decodeValue(view, v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		n, err := decodeCount(view)
		if err != nil {
			return err
		}
		t := v.Type()
		capHint := n
		if capHint > 4096 {
			capHint = 4096
		}
		out := reflect.MakeMapWithSize(t, capHint)
		for i := 0; i < n; i++ {
			k := reflect.New(t.Key()).Elem()
			if err := decodeValue(view, k); err != nil {
				return err
			}
			e := reflect.New(t.Elem()).Elem()
			if err := decodeValue(view, e); err != nil {
				return err
			}
			out.SetMapIndex(k, e)
		}
		v.Set(out)
		return nil

	case reflect.Struct:
		plan := planOf(v.Type())
		for _, i := range plan.fields {
			if err := decodeValue(view, v.Field(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeValue(view, v.Elem())
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}

// signExtend interprets the low width bytes of u as a two's complement
// integer of that width.
func signExtend(u uint64, width int) int64 {
	shift := 64 - 8*width
	return int64(u<<shift) >> shift
}
