package protocol

import "testing"

// feedAll pushes a byte string through the reader and collects completed lines.
func feedAll(r *LineReader, data string) []string {
	var lines []string
	for i := 0; i < len(data); i++ {
		if line, ok := r.Feed(data[i]); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLineReader_Feed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "crlf terminated lines",
			input: "HTTP/1.1 200 OK\r\nDate: x\r\n",
			want:  []string{"HTTP/1.1 200 OK", "Date: x"},
		},
		{
			name:  "bare lf terminated lines",
			input: "France\nParis\n",
			want:  []string{"France", "Paris"},
		},
		{
			name:  "empty line preserved",
			input: "a\r\n\r\nb\r\n",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "trailing partial line not reported",
			input: "complete\nincomple",
			want:  []string{"complete"},
		},
		{
			name:  "carriage return mid line dropped",
			input: "a\rb\n",
			want:  []string{"ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r LineReader
			got := feedAll(&r, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineReader_ResumableAcrossFeeds(t *testing.T) {
	// One byte per "poll" must produce the same lines as a single burst.
	var r LineReader
	input := "Europe/Paris\r\n3600\r\n"

	lines := feedAll(&r, input)
	if len(lines) != 2 || lines[0] != "Europe/Paris" || lines[1] != "3600" {
		t.Fatalf("byte-at-a-time feed produced %q", lines)
	}
	if r.Pending() != 0 {
		t.Errorf("pending = %d after terminated input, want 0", r.Pending())
	}
}

func TestLineReader_Reset(t *testing.T) {
	var r LineReader
	r.Feed('p')
	r.Feed('a')
	if r.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", r.Pending())
	}
	r.Reset()
	if r.Pending() != 0 {
		t.Errorf("pending = %d after reset, want 0", r.Pending())
	}
	if line, ok := r.Feed('\n'); !ok || line != "" {
		t.Errorf("feed after reset = (%q, %v), want empty line", line, ok)
	}
}

func TestLineReader_OverlongLineTruncated(t *testing.T) {
	var r LineReader
	for i := 0; i < maxLineLen*2; i++ {
		r.Feed('x')
	}
	line, ok := r.Feed('\n')
	if !ok {
		t.Fatal("expected completed line")
	}
	if len(line) != maxLineLen {
		t.Errorf("line length = %d, want capped at %d", len(line), maxLineLen)
	}
}
