package utils

// P 取值的指针，用于构造响应里的可选字段
func P[T any](v T) *T {
	return &v
}
