package newsletter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrUpstream          = errors.New("mailchimp returned an error")
	ErrCommunication     = errors.New("failed to communicate with mailchimp")
	ErrConfiguration     = errors.New("mailchimp is not configured")
)

// NewsletterError carrega o código da API e a mensagem exibida ao visitante
type NewsletterError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem para o usuário
	Status  int    // Status HTTP repassado do Mailchimp (0 usa o status do código)
}

func (e *NewsletterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NewsletterError) Unwrap() error {
	return e.Err
}

func NewNewsletterError(baseErr error, code string, details string) *NewsletterError {
	return &NewsletterError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
