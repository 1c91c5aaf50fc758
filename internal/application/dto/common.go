package dto

// ErrorResponse cuerpo de error HTTP.
// Details se usa en errores de validación (campo → mensaje).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
