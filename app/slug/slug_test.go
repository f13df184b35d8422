package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Enchanted Forest", "the-enchanted-forest"},
		{"My Tribute to No-Face", "my-tribute-to-no-face"},
		{"Hello, World! 2026", "hello-world-2026"},
		{"  spaced   out  ", "spaced-out"},
		{"a -- b", "a-b"},
		{"Kodama (木霊)", "kodama-木霊"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.in))
		})
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{"test": true, "test-2": true}
	isTaken := func(s string) bool { return taken[s] }

	assert.Equal(t, "fresh", Unique("fresh", isTaken))
	assert.Equal(t, "test-3", Unique("test", isTaken))
}
