package types

// ErrorMessage 统一的错误响应体
type ErrorMessage struct {
	Error string `json:"error"`
}

// Message 简单的提示响应体
type Message struct {
	Message string `json:"message"`
}
