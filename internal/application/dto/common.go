package dto

// APIResponse envoltura estándar de todas las respuestas HTTP.
// Error lleva un código estable para que los clientes no dependan del texto.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error con código estable.
func Fail(code, message string) APIResponse {
	return APIResponse{Success: false, Error: code, Message: message}
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
