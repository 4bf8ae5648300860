package auth

import "userhub/internal/pkg/apperror"

var (
	ErrEmailAlreadyExists = apperror.BadRequest("DUPLICATE_EMAIL", "Email already in use")

	// Unknown email and wrong password share one error so responses don't
	// reveal which addresses are registered.
	ErrInvalidCredentials = apperror.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")

	ErrAccountDeactivated  = apperror.Unauthorized("ACCOUNT_DEACTIVATED", "Account is deactivated")
	ErrInvalidRefreshToken = apperror.Unauthorized("INVALID_REFRESH_TOKEN", "Invalid refresh token")
)
