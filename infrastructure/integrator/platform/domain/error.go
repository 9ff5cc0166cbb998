package domain

import "fmt"

// ErrorResponse é o envelope de erro da plataforma: {"error": "mensagem"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PlatformError carrega o status HTTP e a mensagem devolvida pela plataforma,
// para que os handlers possam repassar o texto do servidor ao operador.
type PlatformError struct {
	StatusCode int
	Message    string
}

func (e *PlatformError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("requisição à plataforma falhou com status %d", e.StatusCode)
}
