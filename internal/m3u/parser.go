// Package m3u reads and writes the line-oriented extended M3U playlists
// published per region.
package m3u

import (
	"iter"
	"slices"
	"strings"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
)

const (
	markerPrefix = "#EXTINF:"
	urlPrefix    = "http"
)

type parseState int

const (
	seekingMarker parseState = iota
	awaitingURL
)

// parser is a two-state machine over playlist lines. A marker line always
// resets the in-progress entry, so a marker without a following URL line is
// dropped when the next marker arrives.
type parser struct {
	state parseState
	name  string
	logo  string
}

func (p *parser) reset() {
	p.state = seekingMarker
	p.name = ""
	p.logo = ""
}

// feed advances the parser by one line and reports a record when the line
// completes an entry.
func (p *parser) feed(line string) (channel.Record, bool) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, markerPrefix):
		p.reset()
		name := displayName(line)
		if name == "" {
			// Nothing to emit without a name; stay in seekingMarker.
			return channel.Record{}, false
		}
		p.name = name
		p.logo = attribute(line, "tvg-logo")
		p.state = awaitingURL

	case p.state == awaitingURL && strings.HasPrefix(line, urlPrefix):
		rec, err := channel.NewRecord(p.name, p.logo, line)
		p.reset()
		if err != nil {
			return channel.Record{}, false
		}
		return rec, true
	}

	return channel.Record{}, false
}

// Records returns the channel entries of a playlist document in document order.
// The sequence is lazy and can be ranged over any number of times. Malformed
// input never fails; it only yields fewer records.
func Records(text string) iter.Seq[channel.Record] {
	return func(yield func(channel.Record) bool) {
		var p parser
		for line := range strings.Lines(text) {
			if rec, ok := p.feed(line); ok {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// Parse collects every record of a playlist document.
// It returns an empty, non-nil slice when the document has no complete entries.
func Parse(text string) []channel.Record {
	records := slices.Collect(Records(text))
	if records == nil {
		records = []channel.Record{}
	}
	return records
}

// displayName returns everything after the last comma of a marker line.
func displayName(line string) string {
	idx := strings.LastIndex(line, ",")
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}
