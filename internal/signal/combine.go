package signal

import "errors"

// Combine maps every record of every stream, in StreamOrder, keeping each
// stream's original order. Records that fail to map are skipped and
// returned alongside the result with their in-stream index set.
func Combine(s Streams) ([]Signal, []*MalformedRecordError) {
	signals := make([]Signal, 0, s.Len())
	var skipped []*MalformedRecordError

	for _, t := range StreamOrder {
		sigs, skips := combineStream(t, s.Records(t))
		signals = append(signals, sigs...)
		skipped = append(skipped, skips...)
	}

	return signals, skipped
}

// combineStream maps one stream's records. Every record that fails to map is
// reported as a skip, whatever the mapping error was.
func combineStream(t Type, records []Record) ([]Signal, []*MalformedRecordError) {
	signals := make([]Signal, 0, len(records))
	var skipped []*MalformedRecordError

	for i, rec := range records {
		sig, err := Map(rec)
		if err != nil {
			var mre *MalformedRecordError
			if !errors.As(err, &mre) {
				mre = &MalformedRecordError{Stream: t, Err: err}
			}
			mre.Index = i
			skipped = append(skipped, mre)
			continue
		}
		signals = append(signals, sig)
	}

	return signals, skipped
}

// SkipCounts tallies skipped records per stream. Streams with no skips are absent.
func SkipCounts(skipped []*MalformedRecordError) map[Type]int {
	counts := make(map[Type]int)
	for _, e := range skipped {
		counts[e.Stream]++
	}
	return counts
}
