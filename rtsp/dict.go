package rtsp

import (
	"fmt"
	"math"
)

// dict wraps a deserialized property-list dictionary for typed field
// access. Generic plist decoders surface numbers as any of the Go integer
// widths or float64 depending on the wire encoding, so every numeric
// accessor coerces through asInt64/asUint64.
type dict map[string]any

func (d dict) str(key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", &FieldError{Field: key, Err: errMissingField}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: key, Err: errWrongType}
	}
	return s, nil
}

func (d dict) optStr(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (d dict) blob(key string) ([]byte, error) {
	v, ok := d[key]
	if !ok {
		return nil, &FieldError{Field: key, Err: errMissingField}
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, &FieldError{Field: key, Err: errWrongType}
	}
	return b, nil
}

func (d dict) u64(key string) (uint64, error) {
	v, ok := d[key]
	if !ok {
		return 0, &FieldError{Field: key, Err: errMissingField}
	}
	n, ok := asUint64(v)
	if !ok {
		return 0, &FieldError{Field: key, Err: errWrongType}
	}
	return n, nil
}

func (d dict) optU64(key string) (uint64, bool, error) {
	v, ok := d[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := asUint64(v)
	if !ok {
		return 0, false, &FieldError{Field: key, Err: errWrongType}
	}
	return n, true, nil
}

func (d dict) u32(key string) (uint32, error) {
	n, err := d.u64(key)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, &FieldError{Field: key, Err: fmt.Errorf("value %d overflows uint32", n)}
	}
	return uint32(n), nil
}

func (d dict) u16(key string) (uint16, error) {
	n, err := d.u64(key)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint16 {
		return 0, &FieldError{Field: key, Err: fmt.Errorf("value %d overflows uint16", n)}
	}
	return uint16(n), nil
}

func (d dict) u8(key string) (uint8, error) {
	n, err := d.u64(key)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint8 {
		return 0, &FieldError{Field: key, Err: fmt.Errorf("value %d overflows uint8", n)}
	}
	return uint8(n), nil
}

func (d dict) i64(key string) (int64, error) {
	v, ok := d[key]
	if !ok {
		return 0, &FieldError{Field: key, Err: errMissingField}
	}
	n, ok := asInt64(v)
	if !ok {
		return 0, &FieldError{Field: key, Err: errWrongType}
	}
	return n, nil
}

func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint:
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
