package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		known []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-c", "conf.json", "-a", "http://localhost:5000"},
			known: []string{"-c"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=alt.json", "-l", "debug"},
			known: []string{"-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			known: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "flag without value at the end",
			args:  []string{"-d"},
			known: []string{"-d"},
			want:  []string{"-d"},
		},
		{
			name:  "next dash argument is not a value",
			args:  []string{"-c", "-l", "debug"},
			known: []string{"-c", "-l"},
			want:  []string{"-c", "-l", "debug"},
		},
		{
			name:  "value may contain equals in equals form",
			args:  []string{"-a=http://h/?x=1"},
			known: []string{"-a"},
			want:  []string{"-a=http://h/?x=1"},
		},
		{
			name:  "repeated flags keep order",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			known: []string{"-c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "empty",
			args:  nil,
			known: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.known))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/cb.json"}, "/etc/cb.json"},
		{"long", []string{"-a", "http://x", "-config", "/etc/cb.json"}, "/etc/cb.json"},
		{"double dash", []string{"--config=/etc/cb.json"}, "/etc/cb.json"},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"absent", []string{"-d", "x.db"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
