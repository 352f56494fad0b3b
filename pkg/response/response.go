package response

type ResponseCode int

// 统一业务代码
const (
	Success ResponseCode = 100
)

// Response 统一响应体
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

// FromBusinessError 业务错误转响应体，HTTP 状态码由 HTTPStatus 单独决定
func FromBusinessError(err *BusinessError) Response {
	return Response{
		Message: err.Msg,
		Code:    err.Code,
		Data:    nil,
	}
}
