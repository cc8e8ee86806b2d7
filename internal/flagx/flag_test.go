package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	flags := Flags{"-d": true, "-r": true, "-m": false}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "valued flag with separate value",
			args: []string{"-d", "users.db", "-x", "1"},
			want: []string{"-d", "users.db"},
		},
		{
			name: "equals form",
			args: []string{"-d=users.db", "-x=1"},
			want: []string{"-d=users.db"},
		},
		{
			name: "bool flag does not consume next argument",
			args: []string{"-m", "positional", "-r", "pgx"},
			want: []string{"-m", "-r", "pgx"},
		},
		{
			name: "bool flag with explicit value",
			args: []string{"-m=false"},
			want: []string{"-m=false"},
		},
		{
			name: "valued flag followed by another flag",
			args: []string{"-d", "-r", "sqlite"},
			want: []string{"-d", "-r", "sqlite"},
		},
		{
			name: "valued flag at the end",
			args: []string{"-d"},
			want: []string{"-d"},
		},
		{
			name: "unknown flags and positionals ignored",
			args: []string{"-x", "1", "--y=2", "positional"},
			want: []string{},
		},
		{
			name: "value that looks like a flag in equals form",
			args: []string{"-d=-weird"},
			want: []string{"-d=-weird"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, flags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "a.json", "-d", "x"}, "a.json"},
		{"long equals", []string{"-config=b.json"}, "b.json"},
		{"double dash", []string{"--config", "c.json"}, "c.json"},
		{"absent", []string{"-d", "x"}, ""},
		{"missing value", []string{"-c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
