package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"빈 문자열", "", ""},
		{"공백만", "   ", ""},
		{"앞뒤 공백", "  IPFS Gateway  ", "IPFS Gateway"},
		{"연속 공백", "Smart   Contract", "Smart Contract"},
		{"탭과 개행", "Supabase\t\nDB", "Supabase DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSpaces(tt.in))
		})
	}
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"빈 문자열", "", ""},
		{"3자 이하", "abc", "***"},
		{"4자", "abcd", "abcd***"},
		{"12자", "abcdefghijkl", "abcd***"},
		{"긴 값", "abcdefghijklmnop", "abcd***mnop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MaskSensitiveData(tt.in))
		})
	}
}
