package signal

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Forms without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp decodes the timestamp field of a raw record. It accepts the
// ISO-8601 forms feeds actually publish and epoch milliseconds. Anything it
// cannot read decodes to the zero time, which renders as "no timestamp".
type Timestamp struct {
	time.Time
}

// ParseTimestamp reads s with the first matching layout.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	ts.Time = time.Time{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if t, ok := ParseTimestamp(s); ok {
			ts.Time = t
		}
		return nil
	}

	var ms float64
	if err := json.Unmarshal(b, &ms); err == nil {
		ts.Time = time.UnixMilli(int64(ms)).UTC()
	}
	return nil
}

func (r *NewsRecord) UnmarshalJSON(b []byte) error {
	type plain NewsRecord
	var v struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = NewsRecord(v.plain)
	r.Timestamp = v.Timestamp.Time
	return nil
}

func (r *ResearchRecord) UnmarshalJSON(b []byte) error {
	type plain ResearchRecord
	var v struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = ResearchRecord(v.plain)
	r.Timestamp = v.Timestamp.Time
	return nil
}

func (r *ModelRecord) UnmarshalJSON(b []byte) error {
	type plain ModelRecord
	var v struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = ModelRecord(v.plain)
	r.Timestamp = v.Timestamp.Time
	return nil
}

func (r *VideoRecord) UnmarshalJSON(b []byte) error {
	type plain VideoRecord
	var v struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = VideoRecord(v.plain)
	r.Timestamp = v.Timestamp.Time
	return nil
}

func (r *SocialRecord) UnmarshalJSON(b []byte) error {
	type plain SocialRecord
	var v struct {
		plain
		Timestamp Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = SocialRecord(v.plain)
	r.Timestamp = v.Timestamp.Time
	return nil
}
