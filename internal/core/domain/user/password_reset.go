package user

import "context"

// ResetCode is a short-lived random code proving email ownership during a
// password reset. It lives on the user record until the reset succeeds or a
// new code is issued.
type ResetCode string

type ResetCodeGenerator interface {
	GenerateResetCode() ResetCode
}

type ResetCodeSender interface {
	SendResetCode(ctx context.Context, user User, code ResetCode) error
}
