package m3u

import (
	"fmt"
	"io"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
)

// Encoder writes channel records back out as an extended M3U playlist.
type Encoder struct {
	records []channel.Record
}

func NewEncoder() *Encoder {
	return &Encoder{records: []channel.Record{}}
}

// Add appends records to the playlist in the given order.
func (e *Encoder) Add(records ...channel.Record) {
	e.records = append(e.records, records...)
}

// Encode writes the #EXTM3U header followed by one marker/URL pair per record.
func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprint(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, r := range e.records {
		if _, err := fmt.Fprintf(w, "%s-1", markerPrefix); err != nil {
			return err
		}

		if r.HasLogo() {
			if err := encodeAttribute(w, "tvg-logo", r.Logo()); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, ",%s\n%s\n", r.Name(), r.StreamURL()); err != nil {
			return err
		}
	}

	return nil
}
