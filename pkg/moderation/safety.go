// Package moderation screens chat content for off-platform contact details
// and splits message text into plain and link segments for rendering.
package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Rule names the check that blocked a message.
type Rule string

const (
	RulePhone   Rule = "phone"
	RuleEmail   Rule = "email"
	RuleKeyword Rule = "keyword"
)

const (
	ReasonPhone = "phone numbers blocked"
	ReasonEmail = "email addresses blocked"
)

// minPhoneDigits is the shortest digit count treated as a phone number.
const minPhoneDigits = 10

// DefaultKeywords is the deny-list used when none is configured.
var DefaultKeywords = []string{"whatsapp", "telegram", "signal", "pay outside", "bank transfer"}

var (
	// Shapes a phone number takes in chat: a contiguous run of digits,
	// 3-3-4 or 5-5 groups, a parenthesised area code, or a leading +
	// country code. Runs of short numbers such as prices or dates do not
	// match any of them.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{10,15}\b`),
		regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
		regexp.MustCompile(`\b\d{5}[\s.-]\d{5}\b`),
		regexp.MustCompile(`\(\d{2,4}\)[\s.-]?\d{3,4}[\s.-]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}(?:[\s.-]?(?:\(\d{1,4}\)|\d{1,5})){2,5}`),
	}
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// Result is the outcome of a safety check. Reason and Rule are empty when
// Safe is true.
type Result struct {
	Safe   bool
	Rule   Rule
	Reason string
	Term   string
}

// Filter applies the ordered checks: phone, then email, then deny-list.
// The first match wins.
type Filter struct {
	keywords []string
}

// NewFilter builds a filter over keywords. Matching is case-insensitive;
// blank entries are ignored.
func NewFilter(keywords []string) *Filter {
	f := &Filter{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			f.keywords = append(f.keywords, k)
		}
	}
	return f
}

// Keywords returns the normalized deny-list.
func (f *Filter) Keywords() []string {
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

func (f *Filter) Check(text string) Result {
	if text == "" {
		return Result{Safe: true}
	}

	if containsPhone(text) {
		return Result{Rule: RulePhone, Reason: ReasonPhone}
	}

	if emailPattern.MatchString(text) {
		return Result{Rule: RuleEmail, Reason: ReasonEmail}
	}

	lower := strings.ToLower(text)
	for _, k := range f.keywords {
		if strings.Contains(lower, k) {
			return Result{
				Rule:   RuleKeyword,
				Term:   k,
				Reason: fmt.Sprintf("the word %q is flagged for security", k),
			}
		}
	}

	return Result{Safe: true}
}

func containsPhone(text string) bool {
	for _, re := range phonePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if countDigits(m) >= minPhoneDigits {
				return true
			}
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

var defaultFilter = NewFilter(DefaultKeywords)

// CheckSafety runs the default filter.
func CheckSafety(text string) Result {
	return defaultFilter.Check(text)
}

// DefaultFilter returns the filter built from DefaultKeywords.
func DefaultFilter() *Filter {
	return defaultFilter
}
