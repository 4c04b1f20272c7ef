package user

// PasswordPolicy validates a raw password before it may be stored for the
// given user. Implementations return *PasswordPolicyError enumerating every
// violated rule.
type PasswordPolicy interface {
	ValidatePassword(password RawPassword, u User) error
}
