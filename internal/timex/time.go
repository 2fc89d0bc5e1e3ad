package timex

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// TimeLayout is the display form of every account timestamp.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizeTime converts Go, protobuf and RFC 3339 timestamps into UTC with
// millisecond precision, the finest resolution every backend preserves.
// Zero, nil and invalid values report false.
func NormalizeTime(v any) (time.Time, bool) {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		t = *x
	case *timestamppb.Timestamp:
		if x == nil || x.CheckValid() != nil {
			return time.Time{}, false
		}
		t = x.AsTime()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return time.Time{}, false
		}
		t = parsed
	default:
		return time.Time{}, false
	}
	if t.IsZero() {
		return time.Time{}, false
	}
	return t.UTC().Truncate(time.Millisecond), true
}

// FormatTime renders t in TimeLayout; the zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

// ToProto converts t for the wire. The zero time maps to nil so that unset
// timestamps stay absent.
func ToProto(t time.Time) *timestamppb.Timestamp {
	nt, ok := NormalizeTime(t)
	if !ok {
		return nil
	}
	return timestamppb.New(nt)
}
