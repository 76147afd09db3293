// Package api defines the JSON envelope shared by all HTTP handlers.
// Every response is either {"success":true,"data":...} or
// {"success":false,"error":"..."}.
package api

// SuccessResponse は成功レスポンスのエンベロープです。
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse は失敗レスポンスのエンベロープです。
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TokenResponse はログイン成功時のデータ部です。
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse は単純なメッセージのデータ部です。
type MessageResponse struct {
	Message string `json:"message"`
}

// OK はデータを成功エンベロープで包みます。
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Error はメッセージを失敗エンベロープで包みます。
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
