package metadomain

import "fmt"

// GraphError é o envelope de erro da Graph API
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

type ErrorResponse struct {
	Error GraphError `json:"error"`
}

func (e *GraphError) String() string {
	return fmt.Sprintf("%s (code %d, type %s, fbtrace_id %s)", e.Message, e.Code, e.Type, e.FBTraceID)
}

// IsAuthError indica erro de credencial: o token expirou ou foi revogado
func (e *GraphError) IsAuthError() bool {
	return e.Code == 190 || e.Type == "OAuthException"
}
