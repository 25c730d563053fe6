package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRole         = errors.New("papel inválido")
)

// AuthError carrega o código da API junto do erro base
type AuthError struct {
	Err     error
	Code    string
	Subject string // titular do token, quando conhecido
	Details string
}

func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Subject)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// WithSubject associa o titular do token ao erro
func (e *AuthError) WithSubject(subject string) *AuthError {
	e.Subject = subject
	return e
}

// IsTokenError indica se o token apresentado deve ser recusado com 401
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
