package tablesdomain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingClientID   = errors.New("TABLES_CLIENT_ID não configurado")
	ErrInvalidDataFormat = errors.New("formato de dados inválido")
)

// ErrorResponse é o corpo de erro da API de tabelas
type ErrorResponse struct {
	Message string `json:"message"`
}

// RequestError é uma resposta não 2xx da API de tabelas
type RequestError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s falhou com status %d: %s", e.Operation, e.StatusCode, e.Message)
}
