package modeling

import (
	"errors"
	"fmt"
)

// Erros específicos da execução do modelo
var (
	ErrGenerateID    = errors.New("erro ao gerar identificador da execução")
	ErrInvalidInputs = errors.New("premissas inválidas")
)

// ModelError é um erro com contexto adicional para a execução do modelo
type ModelError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RunID   string // Execução envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ModelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError cria um novo ModelError
func NewModelError(err error, code string, details string) *ModelError {
	return &ModelError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
