package ptydriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "plain text untouched",
			raw:  []byte("Current session 16% used"),
			want: "Current session 16% used",
		},
		{
			name: "color codes stripped",
			raw:  []byte("\x1b[36m16%\x1b[0m used"),
			want: "16% used",
		},
		{
			name: "cursor movement stripped",
			raw:  []byte("\x1b[2J\x1b[1;1HResets 5pm"),
			want: "Resets 5pm",
		},
		{
			name: "osc title with bel stripped",
			raw:  []byte("\x1b]0;claude\x07Current week"),
			want: "Current week",
		},
		{
			name: "osc with st terminator stripped",
			raw:  []byte("\x1b]8;;https://claude.ai\x1b\\link"),
			want: "link",
		},
		{
			name: "invalid utf8 replaced",
			raw:  []byte{'o', 'k', 0xff, 0xfe, '!'},
			want: "ok�!",
		},
		{
			name: "empty",
			raw:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw))
		})
	}
}
