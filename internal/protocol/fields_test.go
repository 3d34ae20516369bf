package protocol

import (
	"strings"
	"testing"
)

func TestFieldSet_QueryAndCountAgree(t *testing.T) {
	tests := []struct {
		name      string
		set       FieldSet
		wantQuery string
		wantCount int
	}{
		{
			name:      "default seven fields",
			set:       DefaultFields(),
			wantQuery: "country,city,lat,lon,timezone,offset,query",
			wantCount: 7,
		},
		{
			name:      "with leading status",
			set:       DefaultFields().WithStatus(),
			wantQuery: "status,country,city,lat,lon,timezone,offset,query",
			wantCount: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Query(); got != tt.wantQuery {
				t.Errorf("Query() = %q, want %q", got, tt.wantQuery)
			}
			if got := tt.set.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
			// The wire query must always list exactly Count() fields.
			if n := len(strings.Split(tt.set.Query(), ",")); n != tt.set.Count() {
				t.Errorf("query lists %d fields, count is %d", n, tt.set.Count())
			}
		})
	}
}

func TestFieldSet_At(t *testing.T) {
	set := DefaultFields()

	wantOrder := []Field{
		FieldCountry, FieldCity, FieldLatitude, FieldLongitude,
		FieldTimezone, FieldOffset, FieldQuery,
	}
	for i, want := range wantOrder {
		got, ok := set.At(i)
		if !ok || got != want {
			t.Errorf("At(%d) = (%v, %v), want %v", i, got, ok, want)
		}
	}

	if _, ok := set.At(set.Count()); ok {
		t.Error("At(Count()) should be out of range")
	}
	if _, ok := set.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}

	withStatus := set.WithStatus()
	if got, _ := withStatus.At(0); got != FieldStatus {
		t.Errorf("status set At(0) = %v, want FieldStatus", got)
	}
	if got, _ := withStatus.At(1); got != FieldCountry {
		t.Errorf("status set At(1) = %v, want FieldCountry", got)
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		line string
		want float64
	}{
		{"48.8", 48.8},
		{"-2.35", -2.35},
		{" 51.5 ", 51.5},
		{"0", 0},
		{"garbage", 0}, // malformed folds to the unset sentinel
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseCoordinate(tt.line); got != tt.want {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		line    string
		want    int
		wantErr bool
	}{
		{"3600", 3600, false},
		{"-18000", -18000, false},
		{"0", 0, false},
		{" 7200 ", 7200, false},
		{"UTC+1", 0, true},
		{"", 0, true},
		{"3600.5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseOffset(tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOffset(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOffset(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		wantLang bool
	}{
		{name: "no language", lang: "", wantLang: false},
		{name: "two letter code", lang: "ru", wantLang: true},
		{name: "overlong code ignored", lang: "rus", wantLang: false},
		{name: "single letter ignored", lang: "r", wantLang: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := string(BuildRequest(DefaultFields(), tt.lang))

			if !strings.HasPrefix(req, "GET /line/?fields=country,city,lat,lon,timezone,offset,query") {
				t.Errorf("unexpected request line: %q", req)
			}
			if got := strings.Contains(req, "&lang="); got != tt.wantLang {
				t.Errorf("lang parameter present = %v, want %v", got, tt.wantLang)
			}
			if !strings.Contains(req, "Host: ip-api.com\r\n") {
				t.Error("missing Host header")
			}
			if !strings.Contains(req, "Connection: close\r\n") {
				t.Error("missing Connection: close header")
			}
			if !strings.HasSuffix(req, "\r\n\r\n") {
				t.Error("request must end with blank line")
			}
		})
	}
}
