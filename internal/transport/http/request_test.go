package httptransport

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestLooseIntDecoding(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		floor int64
		want  *int64
	}{
		{name: "absent", body: `{}`, floor: 1, want: nil},
		{name: "null", body: `{"n":null}`, floor: 1, want: nil},
		{name: "number", body: `{"n":2500}`, floor: 1000, want: ptr(2500)},
		{name: "string", body: `{"n":"2500"}`, floor: 1000, want: ptr(2500)},
		{name: "decimal truncates", body: `{"n":"2500.9"}`, floor: 1, want: ptr(2500)},
		{name: "garbage uses floor", body: `{"n":"abc"}`, floor: 1000, want: ptr(1000)},
		{name: "below floor", body: `{"n":5}`, floor: 1000, want: ptr(1000)},
		{name: "bool uses floor", body: `{"n":true}`, floor: 1, want: ptr(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				N looseInt `json:"n"`
			}
			if err := json.Unmarshal([]byte(tt.body), &v); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := v.N.value(tt.floor)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("got %d, want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Fatalf("got %v, want %d", got, *tt.want)
			}
		})
	}
}

func TestLooseFloatDecoding(t *testing.T) {
	var v struct {
		A looseFloat `json:"a"`
		B looseFloat `json:"b"`
		C looseFloat `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":0.04,"b":"0.1","c":"x"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := v.A.value(); got == nil || *got != 0.04 {
		t.Fatalf("a = %v", got)
	}
	if got := v.B.value(); got == nil || *got != 0.1 {
		t.Fatalf("b = %v", got)
	}
	if got := v.C.value(); got != nil {
		t.Fatalf("c = %v, want nil", *got)
	}
}

func TestRequestLang(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?lang=en", nil)
	r.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	if got := requestLang(r, "ja"); got != "ja" {
		t.Fatalf("explicit = %q", got)
	}
	if got := requestLang(r, ""); got != "en" {
		t.Fatalf("query = %q", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	if got := requestLang(r, ""); got != "ja-JP" {
		t.Fatalf("header = %q", got)
	}
	if got := requestLang(httptest.NewRequest("GET", "/x", nil), ""); got != "" {
		t.Fatalf("none = %q", got)
	}
}

func ptr(v int64) *int64 { return &v }
