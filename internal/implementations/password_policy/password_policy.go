package passwordpolicy

import (
	"carshare/internal/core/domain/user"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MIN_LENGTH = 10
const MAX_LENGTH = 15

// Passwords that look too much like the account owner's own data are
// rejected. 0.7 mirrors the threshold commonly used for quick_ratio
// style sequence matching.
const SIMILARITY_THRESHOLD = 0.7

//go:embed common_passwords.txt
var commonPasswordsRaw string

var attributeSplitRe = regexp.MustCompile(`\W+`)
var allDigitsRe = regexp.MustCompile(`^\d+$`)

type Policy struct {
	commonPasswords map[string]struct{}
}

func NewPolicy() *Policy {
	common := make(map[string]struct{})
	for _, line := range strings.Split(commonPasswordsRaw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			common[line] = struct{}{}
		}
	}
	return &Policy{commonPasswords: common}
}

func (p *Policy) ValidatePassword(password user.RawPassword, u user.User) error {
	raw := string(password)
	violations := make([]string, 0)

	length := utf8.RuneCountInString(raw)
	if length < MIN_LENGTH {
		violations = append(
			violations,
			fmt.Sprintf("password must contain at least %d characters", MIN_LENGTH),
		)
	}
	if length > MAX_LENGTH {
		violations = append(
			violations,
			fmt.Sprintf("password must contain at most %d characters", MAX_LENGTH),
		)
	}
	if p.isSimilarToUserAttributes(raw, u) {
		violations = append(violations, "password is too similar to personal information")
	}
	if _, ok := p.commonPasswords[strings.ToLower(raw)]; ok {
		violations = append(violations, "password is too common")
	}
	if allDigitsRe.MatchString(raw) {
		violations = append(violations, "password must not be entirely numeric")
	}

	if len(violations) > 0 {
		return &user.PasswordPolicyError{Violations: violations}
	}
	return nil
}

func (p *Policy) isSimilarToUserAttributes(password string, u user.User) bool {
	password = strings.ToLower(password)
	for _, attribute := range []string{string(u.Email), u.FirstName, u.LastName} {
		attribute = strings.ToLower(attribute)
		if attribute == "" {
			continue
		}
		parts := append(attributeSplitRe.Split(attribute, -1), attribute)
		for _, part := range parts {
			if part == "" {
				continue
			}
			if quickRatio(password, part) >= SIMILARITY_THRESHOLD {
				return true
			}
		}
	}
	return false
}

// quickRatio is an upper bound on sequence similarity based on character
// frequencies only: 2 * matches / total rune count.
func quickRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	counts := make(map[rune]int)
	for _, c := range b {
		counts[c]++
	}
	matches := 0
	for _, c := range a {
		if counts[c] > 0 {
			counts[c]--
			matches++
		}
	}
	return 2 * float64(matches) / float64(total)
}
