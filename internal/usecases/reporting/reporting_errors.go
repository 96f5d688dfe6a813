package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrUpstream      = errors.New("mailchimp returned an error")
	ErrCommunication = errors.New("failed to communicate with mailchimp")
	ErrConfiguration = errors.New("mailchimp is not configured")
)

// ReportingError é um erro do dashboard com o código da API
type ReportingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem para o usuário
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(baseErr error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
