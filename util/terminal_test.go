package util

import (
	"errors"
	"os"
	"testing"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Width            int
	Err              error
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsTerminalResult
}

func (m *MockTerminal) GetSize(fd int) (int, int, error) {
	return m.Width, 24, m.Err
}

func TestTerminalColumns(t *testing.T) {
	tests := []struct {
		name       string
		isTerminal bool
		width      int
		err        error
		file       *os.File
		want       int
	}{
		{
			name:       "terminal width is used",
			isTerminal: true,
			width:      132,
			file:       os.Stderr,
			want:       132,
		},
		{
			name:       "not a terminal",
			isTerminal: false,
			width:      132,
			file:       os.Stderr,
			want:       DefaultColumns,
		},
		{
			name:       "size error",
			isTerminal: true,
			err:        errors.New("inappropriate ioctl for device"),
			file:       os.Stderr,
			want:       DefaultColumns,
		},
		{
			name:       "zero width",
			isTerminal: true,
			width:      0,
			file:       os.Stderr,
			want:       DefaultColumns,
		},
		{
			name: "nil file",
			want: DefaultColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockTerminal{
				IsTerminalResult: tt.isTerminal,
				Width:            tt.width,
				Err:              tt.err,
			}

			got := TerminalColumns(mock, tt.file, DefaultColumns)
			if got != tt.want {
				t.Errorf("TerminalColumns() = %v, want %v", got, tt.want)
			}
		})
	}
}
