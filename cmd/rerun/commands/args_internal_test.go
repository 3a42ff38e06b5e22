package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "space separated values",
			args: []string{"-s", "a", "b", "-t", "c", "d", "--", "make"},
			want: []string{"-s", "a", "-s", "b", "-t", "c", "-t", "d", "--", "make"},
		},
		{
			name: "long flags",
			args: []string{"--source", "src/**", "lib/**", "--target", "out", "--", "make"},
			want: []string{"--source", "src/**", "--source", "lib/**", "--target", "out", "--", "make"},
		},
		{
			name: "equals form keeps collecting",
			args: []string{"--source=a", "b", "--target=c", "--", "x"},
			want: []string{"--source=a", "--source", "b", "--target=c", "--", "x"},
		},
		{
			name: "repeated flags unchanged",
			args: []string{"-s", "a", "-s", "b", "-t", "c", "--", "make"},
			want: []string{"-s", "a", "-s", "b", "-t", "c", "--", "make"},
		},
		{
			name: "other flags stop collecting",
			args: []string{"-s", "a", "-c", "dir", "--verbose", "-t", "b", "--", "make"},
			want: []string{"-s", "a", "-c", "dir", "--verbose", "-t", "b", "--", "make"},
		},
		{
			name: "command after dash untouched",
			args: []string{"-s", "a", "-t", "b", "--", "-s", "x", "y"},
			want: []string{"-s", "a", "-t", "b", "--", "-s", "x", "y"},
		},
		{
			name: "flag without value",
			args: []string{"-s", "--", "make"},
			want: []string{"-s", "--", "make"},
		},
		{
			name: "no args",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}
