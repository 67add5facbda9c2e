package textutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain value", "REF123", "REF123"},
		{"surrounding whitespace", "  John Doe \n", "John Doe"},
		{"placeholder only", "NOTPROVIDED", ""},
		{"lower case placeholder", "notprovided", ""},
		{"mixed case placeholder", "NotProvided", ""},
		{"placeholder with padding", "  NOTPROVIDED  ", ""},
		{"placeholder inside value", "Main NOTPROVIDED Street", "Main  Street"},
		{"repeated placeholder", "NOTPROVIDEDnotprovided", ""},
		{"placeholder prefix", "NOTPROVIDED Jane Roe", "Jane Roe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_NeverLeavesPlaceholder(t *testing.T) {
	inputs := []string{
		"NOTPROVIDED",
		"xNOTPROVIDEDy",
		"nOtPrOvIdEd",
		"a notprovided b NOTPROVIDED c",
		"NOTNOTPROVIDEDPROVIDED",
	}

	for _, in := range inputs {
		out := Clean(in)
		assert.NotContains(t, strings.ToUpper(out), Placeholder, "input %q", in)
	}
}

func TestCleanLines(t *testing.T) {
	lines := []string{" Line 1 ", "NOTPROVIDED", "", "Line 2", "   "}

	assert.Equal(t, []string{"Line 1", "Line 2"}, CleanLines(lines))
	assert.NotNil(t, CleanLines(nil))
	assert.Empty(t, CleanLines(nil))
}

func TestClean_NestedPlaceholder(t *testing.T) {
	assert.Equal(t, "", Clean("NOTNOTPROVIDEDPROVIDED"))
	assert.Equal(t, "ab", Clean("aNOTnotprovidedPROVIDEDb"))
}
