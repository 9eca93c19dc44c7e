// Package fetch reads raw stream documents from a Source and decodes them into
// typed records.
//
// A stream that cannot be read is reported, never fatal: callers hand it to
// the board as an empty collection.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/signalboard/internal/signal"
)

// ErrStreamUnavailable marks a stream whose documents could not be read.
var ErrStreamUnavailable = errors.New("stream unavailable")

// Source yields the raw JSON documents of one stream, one per record.
type Source interface {
	Name() string
	Raw(ctx context.Context, t signal.Type) ([]json.RawMessage, error)
}

// Dir reads streams from a directory of JSON array files (news.json, ...).
type Dir struct {
	path string
}

// NewDir creates a Dir source rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Name identifies the directory source.
func (d *Dir) Name() string {
	return "dir:" + d.path
}

// Raw reads <path>/<stream file> and splits the top-level array.
func (d *Dir) Raw(ctx context.Context, t signal.Type) ([]json.RawMessage, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if !t.Valid() {
		return nil, fmt.Errorf("unknown stream %q", t)
	}

	path := filepath.Join(d.path, t.FileName())
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", t.FileName(), ErrStreamUnavailable)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse %s: %w", t.FileName(), err)
	}
	if raws == nil {
		raws = []json.RawMessage{}
	}
	return raws, nil
}

// Batch is one decoded stream.
type Batch struct {
	Type        signal.Type
	Streams     signal.Streams // only the Type collection is populated
	Undecodable int            // documents that were not valid records
}

// Fetch reads stream t from src and decodes every document independently.
// A document that does not decode is counted and skipped.
func Fetch(ctx context.Context, src Source, t signal.Type) (Batch, error) {
	raws, err := src.Raw(ctx, t)
	if err != nil {
		return Batch{Type: t}, err
	}

	b := Batch{Type: t}
	switch t {
	case signal.TypeNews:
		b.Streams.News, b.Undecodable = decodeAll[signal.NewsRecord](raws)
	case signal.TypeResearch:
		b.Streams.Research, b.Undecodable = decodeAll[signal.ResearchRecord](raws)
	case signal.TypeModel:
		b.Streams.Models, b.Undecodable = decodeAll[signal.ModelRecord](raws)
	case signal.TypeVideo:
		b.Streams.Videos, b.Undecodable = decodeAll[signal.VideoRecord](raws)
	case signal.TypeSocial:
		b.Streams.Social, b.Undecodable = decodeAll[signal.SocialRecord](raws)
	default:
		return Batch{Type: t}, fmt.Errorf("unknown stream %q", t)
	}
	return b, nil
}

func decodeAll[R any](raws []json.RawMessage) ([]R, int) {
	out := make([]R, 0, len(raws))
	bad := 0
	for _, raw := range raws {
		var rec R
		if err := json.Unmarshal(raw, &rec); err != nil {
			bad++
			continue
		}
		out = append(out, rec)
	}
	return out, bad
}

// Result is one full load cycle: every stream, online or not.
type Result struct {
	Source      string
	Streams     signal.Streams
	Offline     map[signal.Type]error
	Undecodable map[signal.Type]int
	Took        time.Duration
}

// NewResult creates an empty Result for src.
func NewResult(src string) Result {
	return Result{
		Source:      src,
		Offline:     make(map[signal.Type]error),
		Undecodable: make(map[signal.Type]int),
	}
}

// Add merges a decoded batch into the result.
func (r *Result) Add(b Batch) {
	switch b.Type {
	case signal.TypeNews:
		r.Streams.News = b.Streams.News
	case signal.TypeResearch:
		r.Streams.Research = b.Streams.Research
	case signal.TypeModel:
		r.Streams.Models = b.Streams.Models
	case signal.TypeVideo:
		r.Streams.Videos = b.Streams.Videos
	case signal.TypeSocial:
		r.Streams.Social = b.Streams.Social
	}
	if b.Undecodable > 0 {
		r.Undecodable[b.Type] = b.Undecodable
	}
}

// Fail records stream t as offline. Its collection stays empty.
func (r *Result) Fail(t signal.Type, err error) {
	if !errors.Is(err, ErrStreamUnavailable) {
		err = fmt.Errorf("%w: %w", ErrStreamUnavailable, err)
	}
	r.Offline[t] = err
}
