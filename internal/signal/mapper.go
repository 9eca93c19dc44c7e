package signal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord is matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a single record that could not be mapped,
// usually because it is missing a field its stream requires. It is scoped to
// that record; the stream keeps going.
type MalformedRecordError struct {
	Stream Type
	Index  int    // position within the stream, -1 when mapped standalone
	Field  string // JSON name of the missing field
	Err    error  // set instead of Field when mapping failed for another reason
}

func (e *MalformedRecordError) Error() string {
	reason := fmt.Sprintf("missing %q", e.Field)
	if e.Err != nil {
		reason = e.Err.Error()
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s record: %s", e.Stream, reason)
	}
	return fmt.Sprintf("%s record %d: %s", e.Stream, e.Index, reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Map converts one raw record into its canonical Signal.
// An empty string in a required field counts as missing.
func Map(r Record) (Signal, error) {
	switch rec := r.(type) {
	case NewsRecord:
		if f := firstMissing("title", rec.Title, "source", rec.Source); f != "" {
			return Signal{}, malformed(TypeNews, f)
		}
		return Signal{
			Title:     rec.Title,
			Summary:   rec.Summary,
			Tags:      cloneTags(rec.Tags),
			Type:      TypeNews,
			Link:      rec.Link,
			Timestamp: rec.Timestamp,
			Subtitle:  rec.Source,
		}, nil

	case ResearchRecord:
		if f := firstMissing("title", rec.Title, "organization", rec.Organization); f != "" {
			return Signal{}, malformed(TypeResearch, f)
		}
		return Signal{
			Title:     rec.Title,
			Summary:   rec.Abstract,
			Tags:      cloneTags(rec.Tags),
			Type:      TypeResearch,
			Link:      rec.Link,
			Timestamp: rec.Timestamp,
			Subtitle:  rec.Organization,
		}, nil

	case ModelRecord:
		if f := firstMissing("name", rec.Name, "provider", rec.Provider, "params", rec.Params); f != "" {
			return Signal{}, malformed(TypeModel, f)
		}
		return Signal{
			Title:     fmt.Sprintf("%s (%s)", rec.Name, rec.Provider),
			Summary:   fmt.Sprintf("%s · %s context · %s", rec.Params, rec.Context, strings.Join(rec.Modalities, "/")),
			Tags:      cloneTags(rec.Domains),
			Type:      TypeModel,
			Link:      rec.Link,
			Timestamp: rec.Timestamp,
			Subtitle:  fmt.Sprintf("%s @ %s", rec.Params, rec.Efficiency),
		}, nil

	case VideoRecord:
		if f := firstMissing("title", rec.Title, "channel", rec.Channel); f != "" {
			return Signal{}, malformed(TypeVideo, f)
		}
		return Signal{
			Title:     rec.Title,
			Summary:   rec.Summary,
			Tags:      cloneTags(rec.Tags),
			Type:      TypeVideo,
			Link:      rec.Link,
			Timestamp: rec.Timestamp,
			Subtitle:  fmt.Sprintf("%s • %s", rec.Channel, rec.Duration),
		}, nil

	case SocialRecord:
		if f := firstMissing("author", rec.Author, "handle", rec.Handle); f != "" {
			return Signal{}, malformed(TypeSocial, f)
		}
		return Signal{
			Title:     fmt.Sprintf("%s (@%s)", rec.Author, rec.Handle),
			Summary:   rec.Content,
			Tags:      cloneTags(rec.Tags),
			Type:      TypeSocial,
			Link:      rec.Link,
			Timestamp: rec.Timestamp,
			Subtitle:  fmt.Sprintf("%d likes · %d reposts", rec.Stats.Likes, rec.Stats.Reposts),
		}, nil
	}

	return Signal{}, fmt.Errorf("unsupported record type %T", r)
}

func malformed(t Type, field string) *MalformedRecordError {
	return &MalformedRecordError{Stream: t, Index: -1, Field: field}
}

// firstMissing takes name/value pairs and returns the first name whose value is empty.
func firstMissing(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return pairs[i]
		}
	}
	return ""
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
