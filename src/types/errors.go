package types

import "errors"

// Boundary errors. Handlers map these to HTTP statuses and a {"message"} body;
// anything unrecognized becomes a 400 or 500 at the call site.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAuthRequired       = errors.New("Authentication required")
	ErrAdminRequired      = errors.New("Administrator access required")

	ErrUsernameTaken = errors.New("Username already exists")
	ErrStaffNotFound = errors.New("Staff member not found")

	ErrTransactionNotFound = errors.New("Transaction not found")

	ErrSlipRequired = errors.New("Bank transfer slip is required")
	ErrSlipTooLarge = errors.New("Bank transfer slip must not exceed 5MB")
	ErrSlipBadType  = errors.New("Invalid file type. Only JPG, PNG, and PDF files are allowed.")

	ErrPassNumberExhausted = errors.New("could not mint a unique pass number")
)
