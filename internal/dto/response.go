package dto

// SuccessResponse is the bare success envelope used by mutating endpoints.
type SuccessResponse struct {
	Sucesso bool `json:"sucesso"`
}

// ErrorResponse is the failure envelope: sucesso=false plus a user-facing
// message.
type ErrorResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
}

// NewErrorResponse builds the failure envelope for a message.
func NewErrorResponse(mensagem string) ErrorResponse {
	return ErrorResponse{Sucesso: false, Mensagem: mensagem}
}
