package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos aos clientes
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Senha do dashboard inválida
	ErrInvalidToken          = "AUTH_002" // Token ausente ou inválido
	ErrExpiredToken          = "AUTH_003" // Token expirado
	ErrInsufficientPrivilege = "AUTH_004" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrRouteNotFound    = "REQ_001" // Rota inexistente
	ErrMethodNotAllowed = "REQ_002" // Método não suportado pela rota

	// Erros de inscrição
	ErrMemberExists = "SUB_001" // Email já inscrito na audiência

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrConfiguration   = "SRV_002" // Configuração ausente ou inválida
	ErrExternalService = "SRV_003" // Erro devolvido pelo Mailchimp
	ErrCommunication   = "SRV_004" // Falha de comunicação com o Mailchimp
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrMemberExists:          http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrConfiguration:         http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteErrorWithStatus(w, StatusFor(code), code, message, details)
}

// WriteErrorWithStatus escreve o erro padronizado com um status HTTP explícito
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
