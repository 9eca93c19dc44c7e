// Package signal defines the raw per-stream records and the canonical Signal
// every stream is mapped into.
//
// Raw records are a tagged union over Type: one struct per stream, each
// implementing Record. Nothing in this package mutates a record.
package signal

import "time"

// Type identifies the stream a record came from.
type Type string

const (
	TypeNews     Type = "NEWS"
	TypeResearch Type = "RESEARCH"
	TypeModel    Type = "MODEL"
	TypeVideo    Type = "VIDEO"
	TypeSocial   Type = "SOCIAL"
)

// StreamOrder is the fixed priority order used when streams are combined.
// It is the tie-break for palette ordering, so it is user-visible.
var StreamOrder = [...]Type{TypeNews, TypeResearch, TypeModel, TypeVideo, TypeSocial}

// FileName returns the data file a stream is published as.
func (t Type) FileName() string {
	switch t {
	case TypeNews:
		return "news.json"
	case TypeResearch:
		return "research.json"
	case TypeModel:
		return "models.json"
	case TypeVideo:
		return "videos.json"
	case TypeSocial:
		return "social.json"
	}
	return ""
}

// Valid reports whether t is one of the five known streams.
func (t Type) Valid() bool {
	return t.FileName() != ""
}

// Record is implemented by every raw stream record.
type Record interface {
	Stream() Type
	// TagList returns the record's tag-like field: tags, or domains for models.
	TagList() []string
	Time() time.Time
	URL() string
}

// NewsRecord is one news brief.
type NewsRecord struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	Region    string    `json:"region"`
	Tags      []string  `json:"tags"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
}

func (r NewsRecord) Stream() Type      { return TypeNews }
func (r NewsRecord) TagList() []string { return r.Tags }
func (r NewsRecord) Time() time.Time   { return r.Timestamp }
func (r NewsRecord) URL() string       { return r.Link }

// ResearchRecord is one research drop.
type ResearchRecord struct {
	Title        string    `json:"title"`
	Abstract     string    `json:"abstract"`
	Authors      []string  `json:"authors"`
	Organization string    `json:"organization"`
	Tags         []string  `json:"tags"`
	Link         string    `json:"link"`
	Timestamp    time.Time `json:"timestamp"`
}

func (r ResearchRecord) Stream() Type      { return TypeResearch }
func (r ResearchRecord) TagList() []string { return r.Tags }
func (r ResearchRecord) Time() time.Time   { return r.Timestamp }
func (r ResearchRecord) URL() string       { return r.Link }

// Benchmarks holds published benchmark scores for a model card.
type Benchmarks struct {
	MMLU float64 `json:"mmlu"`
}

// ModelRecord is one model card. Its tags live in Domains.
type ModelRecord struct {
	Name       string     `json:"name"`
	Provider   string     `json:"provider"`
	Params     string     `json:"params"`
	Context    string     `json:"context"`
	Modalities []string   `json:"modalities"`
	Benchmarks Benchmarks `json:"benchmarks"`
	Efficiency string     `json:"efficiency"`
	Domains    []string   `json:"domains"`
	Link       string     `json:"link"`
	Timestamp  time.Time  `json:"timestamp"`
}

func (r ModelRecord) Stream() Type      { return TypeModel }
func (r ModelRecord) TagList() []string { return r.Domains }
func (r ModelRecord) Time() time.Time   { return r.Timestamp }
func (r ModelRecord) URL() string       { return r.Link }

// VideoRecord is one video explainer.
type VideoRecord struct {
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	Duration  string    `json:"duration"`
	Summary   string    `json:"summary"`
	Tags      []string  `json:"tags"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
}

func (r VideoRecord) Stream() Type      { return TypeVideo }
func (r VideoRecord) TagList() []string { return r.Tags }
func (r VideoRecord) Time() time.Time   { return r.Timestamp }
func (r VideoRecord) URL() string       { return r.Link }

// SocialStats are engagement counters on a social post.
type SocialStats struct {
	Likes   int `json:"likes"`
	Reposts int `json:"reposts"`
}

// SocialRecord is one social post.
type SocialRecord struct {
	Handle    string      `json:"handle"`
	Author    string      `json:"author"`
	Content   string      `json:"content"`
	Stats     SocialStats `json:"stats"`
	Tags      []string    `json:"tags"`
	Link      string      `json:"link"`
	Timestamp time.Time   `json:"timestamp"`
}

func (r SocialRecord) Stream() Type      { return TypeSocial }
func (r SocialRecord) TagList() []string { return r.Tags }
func (r SocialRecord) Time() time.Time   { return r.Timestamp }
func (r SocialRecord) URL() string       { return r.Link }

// Signal is the canonical, type-erased view of one record. It is derived,
// never stored; the raw record stays the backing data for typed rendering.
type Signal struct {
	Title     string
	Summary   string
	Tags      []string // never nil
	Type      Type
	Link      string
	Timestamp time.Time
	Subtitle  string
}

// Streams holds one load cycle's collections. A stream that failed to load
// is simply empty.
type Streams struct {
	News     []NewsRecord
	Research []ResearchRecord
	Models   []ModelRecord
	Videos   []VideoRecord
	Social   []SocialRecord
}

// Records returns one stream as a []Record in its original order.
func (s Streams) Records(t Type) []Record {
	switch t {
	case TypeNews:
		return AsRecords(s.News)
	case TypeResearch:
		return AsRecords(s.Research)
	case TypeModel:
		return AsRecords(s.Models)
	case TypeVideo:
		return AsRecords(s.Videos)
	case TypeSocial:
		return AsRecords(s.Social)
	}
	return nil
}

// Collections returns every stream in StreamOrder.
func (s Streams) Collections() [][]Record {
	out := make([][]Record, 0, len(StreamOrder))
	for _, t := range StreamOrder {
		out = append(out, s.Records(t))
	}
	return out
}

// Count returns the number of records in one stream.
func (s Streams) Count(t Type) int {
	switch t {
	case TypeNews:
		return len(s.News)
	case TypeResearch:
		return len(s.Research)
	case TypeModel:
		return len(s.Models)
	case TypeVideo:
		return len(s.Videos)
	case TypeSocial:
		return len(s.Social)
	}
	return 0
}

// Len returns the number of records across all streams.
func (s Streams) Len() int {
	n := 0
	for _, t := range StreamOrder {
		n += s.Count(t)
	}
	return n
}

// AsRecords widens a typed collection to []Record.
func AsRecords[R Record](records []R) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
