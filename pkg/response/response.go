package response

// Response is the standard API envelope: a boolean status, a human-readable
// message and either the payload or error details.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Standard response messages (user-facing, Indonesian).
const (
	MsgDataFound      = "Data ditemukan"
	MsgDataNotFound   = "Data tidak ditemukan"
	MsgInvalidRequest = "Request tidak valid"
	MsgInternalError  = "Terjadi kesalahan pada server"
	MsgUnauthorized   = "API Key tidak valid"
	MsgAPIKeyRequired = "API Key diperlukan"
	MsgRouteNotFound  = "Endpoint tidak ditemukan"
)

// Success wraps a payload in a successful envelope.
func Success(message string, data interface{}) Response {
	return Response{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// Error wraps an error message in a failed envelope.
func Error(message string) Response {
	return Response{
		Status:  false,
		Message: message,
	}
}

// ErrorWithDetails attaches diagnostic details to a failed envelope.
func ErrorWithDetails(message string, errors interface{}) Response {
	return Response{
		Status:  false,
		Message: message,
		Errors:  errors,
	}
}
