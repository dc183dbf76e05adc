package catalog

import (
	"net/url"
	"strings"

	"github.com/powerboxizm12/stremio-au-addon/internal/channel"
)

const imageProxyURL = "https://images.weserv.nl/"

// LogoFallback maps a channel name substring to a logo URL.
type LogoFallback struct {
	Match string `yaml:"match"`
	URL   string `yaml:"url"`
}

// LogoTable is an ordered list of fallbacks. Entries may overlap; the first
// entry whose Match is contained in a channel name wins.
type LogoTable []LogoFallback

// DefaultLogos returns the built-in fallback table.
// Numeric keys come first, so "7mate" resolves to the "7" logo.
func DefaultLogos() LogoTable {
	return LogoTable{
		{Match: "7", URL: "https://i.imgur.com/8V5iJ2b.png"},
		{Match: "9", URL: "https://i.imgur.com/VlT00sL.png"},
		{Match: "10", URL: "https://i.imgur.com/7lR5kDK.png"},
		{Match: "7two", URL: "https://i.imgur.com/5zD5z1s.png"},
		{Match: "7mate", URL: "https://i.imgur.com/DBCp2sM.png"},
		{Match: "7flix", URL: "https://i.imgur.com/A92i6S2.png"},
		{Match: "9Gem", URL: "https://i.imgur.com/pZq1gG3.png"},
		{Match: "9Go!", URL: "https://i.imgur.com/zWJ4nEV.png"},
		{Match: "9Life", URL: "https://i.imgur.com/i9Xp295.png"},
		{Match: "9Rush", URL: "https://i.imgur.com/iF5aG5V.png"},
		{Match: "10 Bold", URL: "https://i.imgur.com/e0yJ1v4.png"},
		{Match: "10 Peach", URL: "https://i.imgur.com/yXbNp3A.png"},
		{Match: "ABC TV", URL: "https://i.imgur.com/3yZ6k8j.png"},
		{Match: "SBS", URL: "https://i.imgur.com/gO9aT3U.png"},
	}
}

// Lookup returns the URL of the first entry whose Match is a substring of name.
func (t LogoTable) Lookup(name string) (string, bool) {
	for _, f := range t {
		if strings.Contains(name, f.Match) {
			return f.URL, true
		}
	}
	return "", false
}

// Resolve returns the record's own logo, or the table fallback for its name, or "".
func (t LogoTable) Resolve(rec channel.Record) string {
	if rec.HasLogo() {
		return rec.Logo()
	}
	logo, _ := t.Lookup(rec.Name())
	return logo
}

// ProxyLogo rewrites a logo URL through the image proxy as a 200x200 image
// on a black background. It returns "" for an empty URL.
func ProxyLogo(logo string) string {
	if logo == "" {
		return ""
	}
	return imageProxyURL + "?url=" + url.QueryEscape(logo) + "&bg=black&w=200&h=200&fit=contain"
}
