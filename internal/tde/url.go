package tde

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/google/uuid"
)

// hostPattern is the fixed set of accepted site hosts: the German portal
// plus the tournamentsoftware.com instances of the other federations.
var hostPattern = regexp.MustCompile(`^(www\.turnier\.de|[a-z]+\.tournamentsoftware\.com)$`)

var matchParamPattern = regexp.MustCompile(`^[0-9]+$`)

// MatchURL is a validated team match page URL.
type MatchURL struct {
	Raw     string
	Host    string
	DrawID  string
	MatchNr string
	Variant Variant
}

// ParseMatchURL validates a raw team match URL against the accepted shape
// scheme://<host>/sport/teammatch.aspx?id=<uuid>&match=<digits> and the
// host allowlist. Anything else fails with ErrUnsupportedURL before any
// fetch happens.
func ParseMatchURL(raw string) (*MatchURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}
	if !hostPattern.MatchString(u.Host) {
		return nil, fmt.Errorf("%w: host %q", ErrUnsupportedURL, u.Host)
	}
	if u.Path != "/sport/teammatch.aspx" {
		return nil, fmt.Errorf("%w: path %q", ErrUnsupportedURL, u.Path)
	}

	q := u.Query()
	if len(q) != 2 {
		return nil, fmt.Errorf("%w: query %q", ErrUnsupportedURL, u.RawQuery)
	}
	drawID := q.Get("id")
	matchNr := q.Get("match")
	if _, err := uuid.Parse(drawID); err != nil {
		return nil, fmt.Errorf("%w: id %q", ErrUnsupportedURL, drawID)
	}
	if !matchParamPattern.MatchString(matchNr) {
		return nil, fmt.Errorf("%w: match %q", ErrUnsupportedURL, matchNr)
	}

	return &MatchURL{
		Raw:     raw,
		Host:    u.Host,
		DrawID:  drawID,
		MatchNr: matchNr,
		Variant: VariantForHost(u.Host),
	}, nil
}
