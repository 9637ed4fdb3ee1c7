package timeutil

import "time"

// Epoch is the sentinel instant used when a stored record carries no usable
// timestamp. Display code always needs a renderable date, so normalization
// degrades to this value instead of failing.
var Epoch = time.Unix(0, 0).UTC()

// Normalize converts any of the stored timestamp shapes into a canonical
// UTC time.Time. Accepted shapes:
//   - time.Time / *time.Time (the driver's decoded form)
//   - map with numeric "seconds"/"nanoseconds" (also the underscore-prefixed
//     variants some exports produce)
//   - nil or anything unrecognized, which yields Epoch
//
// Normalize never fails.
func Normalize(raw interface{}) time.Time {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return Epoch
		}
		return v.UTC()
	case *time.Time:
		if v == nil || v.IsZero() {
			return Epoch
		}
		return v.UTC()
	case map[string]interface{}:
		sec, okSec := numberField(v, "seconds", "_seconds")
		if !okSec {
			return Epoch
		}
		nsec, _ := numberField(v, "nanoseconds", "_nanoseconds")
		return time.Unix(sec, nsec).UTC()
	default:
		return Epoch
	}
}

// IsSentinel reports whether t is the epoch-zero sentinel (or the Go zero
// value, which serializes the same way).
func IsSentinel(t time.Time) bool {
	return t.IsZero() || t.Equal(Epoch)
}

// FormatISO renders t as an ISO-8601 string, or nil when t is the sentinel.
// RFC 3339 with nanoseconds is exact, so a non-nil result parses back to the
// same instant.
func FormatISO(t time.Time) *string {
	if IsSentinel(t) {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

// ParseISO is the inverse of FormatISO for non-nil values.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Epoch, err
	}
	return t.UTC(), nil
}

func numberField(m map[string]interface{}, keys ...string) (int64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int64:
			return n, true
		case int:
			return int64(n), true
		case int32:
			return int64(n), true
		case float64:
			return int64(n), true
		case float32:
			return int64(n), true
		}
	}
	return 0, false
}
