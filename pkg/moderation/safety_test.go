package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSafety(t *testing.T) {
	tests := []struct {
		name string
		text string
		safe bool
		rule Rule
	}{
		{"plain phone", "call me at 9876543210", false, RulePhone},
		{"formatted phone", "my cell is +1 (555) 123-4567", false, RulePhone},
		{"spaced groups", "ring 98765 43210 tonight", false, RulePhone},
		{"email", "mail me at a@b.com", false, RuleEmail},
		{"keyword", "let's use whatsapp", false, RuleKeyword},
		{"keyword mixed case", "Ping me on TeleGram", false, RuleKeyword},
		{"payment phrase", "we can pay outside the site", false, RuleKeyword},
		{"safe", "great, let's start", true, ""},
		{"empty", "", true, ""},
		{"date", "deadline is 2024-01-15", true, ""},
		{"budget range", "budget 1000-2000 works", true, ""},
		{"short number", "I have 12345 lines of code", true, ""},
		{"dashed phone", "text 415-555-0123 later", false, RulePhone},
		{"dotted phone", "555.123.4567", false, RulePhone},
		{"area code only", "office (020) 7946 0958", false, RulePhone},
		{"international", "reach me on +44 20 7946 0958", false, RulePhone},
		{"milestone amounts", "milestones of 1000 2000 3000 each", true, ""},
		{"rate list", "rates 100 200 300 400", true, ""},
		{"order and times", "order 2024 1015 0930", true, ""},
		{"long id with plus sign", "version 2+1 of 3 builds", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckSafety(tt.text)
			assert.Equal(t, tt.safe, res.Safe)
			assert.Equal(t, tt.rule, res.Rule)
			if !tt.safe {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestCheckSafetyOrder(t *testing.T) {
	// phone is checked before email, email before keywords
	res := CheckSafety("whatsapp a@b.com or 9876543210")
	assert.Equal(t, RulePhone, res.Rule)
	assert.Equal(t, ReasonPhone, res.Reason)

	res = CheckSafety("whatsapp or a@b.com")
	assert.Equal(t, RuleEmail, res.Rule)
	assert.Equal(t, ReasonEmail, res.Reason)
}

func TestKeywordReasonNamesTerm(t *testing.T) {
	res := CheckSafety("happy to do a bank transfer")
	require.False(t, res.Safe)
	assert.Equal(t, "bank transfer", res.Term)
	assert.True(t, strings.Contains(res.Reason, "bank transfer"))
}

func TestCustomFilter(t *testing.T) {
	f := NewFilter([]string{"  Upwork ", "", "FIVERR"})
	assert.Equal(t, []string{"upwork", "fiverr"}, f.Keywords())

	assert.False(t, f.Check("found you on fiverr").Safe)
	assert.True(t, f.Check("let's use whatsapp").Safe, "custom list replaces defaults")
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter([]byte("keywords:\n  - skype\n  - venmo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"skype", "venmo"}, f.Keywords())

	f, err = ParseFilter([]byte("keywords: []\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywords, f.Keywords())

	_, err = ParseFilter([]byte("keywords: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFilterMissingFile(t *testing.T) {
	f, err := LoadFilter(t.TempDir() + "/absent.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywords, f.Keywords())
}
