package parse

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:    "simple command",
			input:   "demo --port",
			want:    []string{"demo", "--port"},
			wantErr: false,
		},
		{
			name:    "quoted arguments",
			input:   `demo --name "hello world"`,
			want:    []string{"demo", "--name", "hello world"},
			wantErr: false,
		},
		{
			name:    "escaped quotes",
			input:   `demo \"hello\"`,
			want:    []string{"demo", `"hello"`},
			wantErr: false,
		},
		{
			name:    "multiple spaces",
			input:   "demo   --a    --b",
			want:    []string{"demo", "--a", "--b"},
			wantErr: false,
		},
		{
			name:    "empty string",
			input:   "",
			want:    []string{},
			wantErr: false,
		},
		{
			name:    "unterminated quote",
			input:   `demo "--he`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorWord(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		point int
		want  string
	}{
		{"last word", "demo --he", 9, "--he"},
		{"cursor after space", "demo --help ", 12, ""},
		{"cursor in the middle", "demo --port 80 --he", 11, "--port"},
		{"point past end is clamped", "demo --he", 99, "--he"},
		{"negative point is clamped", "demo --ve", -1, "--ve"},
		{"search markers survive", "demo --he??+", 12, "--he??+"},
		{"unterminated quote keeps raw word", `demo "--he`, 10, `"--he`},
		{"empty line", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CursorWord(tt.line, tt.point); got != tt.want {
				t.Errorf("CursorWord(%q, %d) = %q, want %q", tt.line, tt.point, got, tt.want)
			}
		})
	}
}
