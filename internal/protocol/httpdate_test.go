package protocol

import (
	"testing"
	"time"
)

func TestParseHTTPDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc1123",
			value: "Mon, 01 Jan 2024 00:00:00 GMT",
			want:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "non padded day",
			value: "Tue, 2 Jan 2024 15:04:05 GMT",
			want:  time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: "  Mon, 01 Jan 2024 00:00:00 GMT  ",
			want:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHTTPDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHTTPDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseHTTPDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDateHeaderValue(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"Date: Mon, 01 Jan 2024 00:00:00 GMT", "Mon, 01 Jan 2024 00:00:00 GMT", true},
		{"Date:Mon, 01 Jan 2024 00:00:00 GMT", "Mon, 01 Jan 2024 00:00:00 GMT", true},
		{"Server: nginx", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := DateHeaderValue(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("DateHeaderValue(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}
