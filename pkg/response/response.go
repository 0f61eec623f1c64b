// Package response 统一 API 响应信封
// 所有接口返回 {message, code, data} 三段式，
// 前端通过 code 区分业务结果，HTTP 状态码仅表达鉴权和资源存在性
package response

type ResponseCode int

// Success 业务成功码，与错误码（errors.go）共用同一个字段
const Success ResponseCode = 100

type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

// SuccessResponse 成功响应，data 为空时返回 null
func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

// ErrorResponse 业务失败响应，data 恒为 null
func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
