package passwordpolicy

import (
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/user"
	"errors"
	"fmt"
	"testing"
)

var testUser = user.User{
	ID:        1,
	Email:     c.Email("ivan.petrov@test.test"),
	FirstName: "Ivan",
	LastName:  "Petrov",
}

func violations(t *testing.T, password string) []string {
	t.Helper()
	err := NewPolicy().ValidatePassword(user.RawPassword(password), testUser)
	if err == nil {
		return nil
	}
	var errPolicy *user.PasswordPolicyError
	if !errors.As(err, &errPolicy) {
		t.Fatalf("unexpected error type: %v", err)
	}
	return errPolicy.Violations
}

func TestValidPasswords(t *testing.T) {
	cases := []string{
		"correct-horse",
		"Tr0ub4dor&3xx",
		"q8#Lm!2pZw",
	}
	for _, password := range cases {
		t.Run(password, func(t *testing.T) {
			if v := violations(t, password); v != nil {
				t.Fatalf("expected no violations, got %v", v)
			}
		})
	}
}

func TestInvalidPasswords(t *testing.T) {
	type testcase struct {
		password  string
		violation string
	}
	cases := []testcase{
		{password: "short", violation: fmt.Sprintf("password must contain at least %d characters", MIN_LENGTH)},
		{password: "a-very-long-password-indeed", violation: fmt.Sprintf("password must contain at most %d characters", MAX_LENGTH)},
		{password: "1234567890123", violation: "password must not be entirely numeric"},
		{password: "qwerty12345", violation: "password is too common"},
		{password: "petrov2024", violation: "password is too similar to personal information"},
	}
	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			v := violations(t, tc.password)
			for _, got := range v {
				if got == tc.violation {
					return
				}
			}
			t.Fatalf("expected violation %q, got %v", tc.violation, v)
		})
	}
}

func TestLengthIsCountedInRunes(t *testing.T) {
	// 5 runes but 10 bytes, must still be too short.
	v := violations(t, "топор")
	expected := fmt.Sprintf("password must contain at least %d characters", MIN_LENGTH)
	for _, got := range v {
		if got == expected {
			return
		}
	}
	t.Fatalf("expected violation %q, got %v", expected, v)
}

func TestSimilarityToCyrillicName(t *testing.T) {
	u := user.User{
		ID:        2,
		Email:     c.Email("sasha@test.test"),
		FirstName: "Александра",
		LastName:  "Иванова",
	}
	err := NewPolicy().ValidatePassword(user.RawPassword("александра"), u)
	var errPolicy *user.PasswordPolicyError
	if !errors.As(err, &errPolicy) {
		t.Fatalf("expected policy error, got %v", err)
	}
	expected := "password is too similar to personal information"
	for _, got := range errPolicy.Violations {
		if got == expected {
			return
		}
	}
	t.Fatalf("expected violation %q, got %v", expected, errPolicy.Violations)
}

func TestShortPasswordReportsAllViolations(t *testing.T) {
	// "123456" is short, common and entirely numeric at once.
	v := violations(t, "123456")
	if len(v) < 3 {
		t.Fatalf("expected at least 3 violations, got %v", v)
	}
}

func TestQuickRatio(t *testing.T) {
	type testcase struct {
		a        string
		b        string
		expected float64
	}
	cases := []testcase{
		{a: "abc", b: "abc", expected: 1},
		{a: "abc", b: "xyz", expected: 0},
		{a: "", b: "", expected: 1},
		{a: "ab", b: "ba", expected: 1},
		{a: "александра", b: "александра", expected: 1},
	}
	for _, tc := range cases {
		got := quickRatio(tc.a, tc.b)
		if got != tc.expected {
			t.Fatalf("quickRatio(%q, %q) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}
