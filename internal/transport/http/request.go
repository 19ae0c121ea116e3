package httptransport

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"casino-sim/internal/config"

	"golang.org/x/text/language"
)

// looseInt accepts a JSON number, a numeric string, or anything else. The raw
// text is kept and coerced once the caller knows the floor.
type looseInt struct {
	raw string
	set bool
}

func (l *looseInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	l.set = true
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		l.raw = s
		return nil
	}
	l.raw = string(b)
	return nil
}

// value returns nil when the field was absent so the configured default applies.
func (l looseInt) value(floor int64) *int64 {
	if !l.set {
		return nil
	}
	v := config.CoerceInt(l.raw, floor)
	return &v
}

// looseFloat is looseInt for rates. Unparseable input counts as absent.
type looseFloat struct {
	v   float64
	set bool
}

func (l *looseFloat) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		raw = s
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	l.v, l.set = f, true
	return nil
}

func (l looseFloat) value() *float64 {
	if !l.set {
		return nil
	}
	v := l.v
	return &v
}

// decodeBody reads an optional JSON body. An empty body decodes to the zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(dst); err != nil {
		return errors.Is(err, io.EOF)
	}
	return true
}

// requestLang picks the explicit language, then ?lang=, then Accept-Language.
// Empty means the server default.
func requestLang(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := r.URL.Query().Get("lang"); v != "" {
		return v
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		return tags[0].String()
	}
	return ""
}
