package m3u

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
)

// flat is a comparable view of a record used to diff parse results.
type flat struct {
	Name, Logo, URL string
}

func flatten(records []channel.Record) []flat {
	out := make([]flat, len(records))
	for i, r := range records {
		out[i] = flat{Name: r.Name(), Logo: r.Logo(), URL: r.StreamURL()}
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []flat
	}{
		{
			name: "single entry with logo",
			input: `#EXTM3U
#EXTINF:-1 tvg-id="7.syd" tvg-logo="https://example.com/7.png" group-title="Seven",7
https://example.com/7.m3u8
`,
			want: []flat{{Name: "7", Logo: "https://example.com/7.png", URL: "https://example.com/7.m3u8"}},
		},
		{
			name: "entry without logo attribute",
			input: `#EXTINF:-1 tvg-id="abc",ABC TV
http://example.com/abc.m3u8`,
			want: []flat{{Name: "ABC TV", URL: "http://example.com/abc.m3u8"}},
		},
		{
			name: "name is taken after the last comma",
			input: `#EXTINF:-1 tvg-logo="https://example.com/a,b.png",9Gem
https://example.com/gem.m3u8`,
			want: []flat{{Name: "9Gem", Logo: "https://example.com/a,b.png", URL: "https://example.com/gem.m3u8"}},
		},
		{
			name: "marker without url is dropped at next marker",
			input: `#EXTINF:-1,Orphan
#EXTINF:-1,SBS
https://example.com/sbs.m3u8`,
			want: []flat{{Name: "SBS", URL: "https://example.com/sbs.m3u8"}},
		},
		{
			name: "trailing marker without url is dropped",
			input: `#EXTINF:-1,10
https://example.com/10.m3u8
#EXTINF:-1,Dangling`,
			want: []flat{{Name: "10", URL: "https://example.com/10.m3u8"}},
		},
		{
			name: "unrelated lines are ignored between marker and url",
			input: `#EXTINF:-1,7two
#EXTVLCOPT:http-user-agent=test
# comment

https://example.com/7two.m3u8`,
			want: []flat{{Name: "7two", URL: "https://example.com/7two.m3u8"}},
		},
		{
			name: "url without preceding marker is ignored",
			input: `https://example.com/stray.m3u8
#EXTINF:-1,7mate
https://example.com/7mate.m3u8
https://example.com/second.m3u8`,
			want: []flat{{Name: "7mate", URL: "https://example.com/7mate.m3u8"}},
		},
		{
			name: "marker without comma never completes",
			input: `#EXTINF:-1 tvg-logo="https://example.com/x.png"
https://example.com/x.m3u8`,
			want: []flat{},
		},
		{
			name: "marker with blank name never completes",
			input: `#EXTINF:-1,   
https://example.com/x.m3u8`,
			want: []flat{},
		},
		{
			name: "empty tvg-logo is treated as absent",
			input: `#EXTINF:-1 tvg-logo="",9Life
https://example.com/life.m3u8`,
			want: []flat{{Name: "9Life", URL: "https://example.com/life.m3u8"}},
		},
		{
			name:  "crlf line endings",
			input: "#EXTM3U\r\n#EXTINF:-1 tvg-logo=\"https://example.com/9.png\",9\r\nhttps://example.com/9.m3u8\r\n",
			want:  []flat{{Name: "9", Logo: "https://example.com/9.png", URL: "https://example.com/9.m3u8"}},
		},
		{
			name: "duplicates are kept in document order",
			input: `#EXTINF:-1,7
https://example.com/a.m3u8
#EXTINF:-1,7
https://example.com/b.m3u8`,
			want: []flat{
				{Name: "7", URL: "https://example.com/a.m3u8"},
				{Name: "7", URL: "https://example.com/b.m3u8"},
			},
		},
		{
			name:  "empty document",
			input: "",
			want:  []flat{},
		},
		{
			name:  "garbage",
			input: "<html><body>not a playlist</body></html>",
			want:  []flat{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if diff := cmp.Diff(tt.want, flatten(got)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordsIsRestartable(t *testing.T) {
	input := `#EXTINF:-1,7
https://example.com/7.m3u8
#EXTINF:-1,9
https://example.com/9.m3u8`

	seq := Records(input)

	var first, second []string
	for r := range seq {
		first = append(first, r.Name())
	}
	for r := range seq {
		second = append(second, r.Name())
	}

	if diff := cmp.Diff([]string{"7", "9"}, first); diff != "" {
		t.Errorf("first pass mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs from first (-first +second):\n%s", diff)
	}
}

func TestRecordsStopsEarly(t *testing.T) {
	input := `#EXTINF:-1,7
https://example.com/7.m3u8
#EXTINF:-1,9
https://example.com/9.m3u8`

	count := 0
	for range Records(input) {
		count++
		break
	}

	if count != 1 {
		t.Errorf("expected iteration to stop after 1 record, got %d", count)
	}
}

func TestAttribute(t *testing.T) {
	line := `#EXTINF:-1 tvg-id="seven" tvg-logo="https://example.com/7.png",7`

	if got := attribute(line, "tvg-logo"); got != "https://example.com/7.png" {
		t.Errorf("expected logo, got %q", got)
	}
	if got := attribute(line, "group-title"); got != "" {
		t.Errorf("expected empty value for missing attribute, got %q", got)
	}
	if got := attribute(`#EXTINF:-1 tvg-logo="unterminated,7`, "tvg-logo"); got != "" {
		t.Errorf("expected empty value for unterminated attribute, got %q", got)
	}
}
