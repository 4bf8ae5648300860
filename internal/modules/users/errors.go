package users

import "userhub/internal/pkg/apperror"

var (
	ErrUserNotFound       = apperror.NotFound("USER_NOT_FOUND", "User not found")
	ErrEmailAlreadyExists = apperror.BadRequest("DUPLICATE_EMAIL", "Email already in use")

	ErrRoleChangeForbidden   = apperror.Forbidden("FORBIDDEN", "Unauthorized to change user roles")
	ErrStatusChangeForbidden = apperror.Forbidden("FORBIDDEN", "Unauthorized to change user status")
)
