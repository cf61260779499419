package response

import "net/http"

type ResponseCode int

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// 统一业务代码
const (
	Success ResponseCode = http.StatusOK
	Created ResponseCode = http.StatusCreated
)

type Response struct {
	Status  string       `json:"status"`
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
	Meta    any          `json:"meta,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	PerPage     int   `json:"per_page"`
}

// NewPagination 根据总数计算分页信息，total_pages = ceil(total_items / per_page)
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PerPage:     perPage,
	}
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithCode(code ResponseCode) ResponseOptions {
	return func(r *Response) {
		r.Code = code
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func WithMeta(meta any) ResponseOptions {
	return func(r *Response) {
		r.Meta = meta
	}
}

func WithPagination(p Pagination) ResponseOptions {
	return func(r *Response) {
		r.Meta = map[string]any{"pagination": p}
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{
		Status:  StatusSuccess,
		Code:    Success,
		Message: "success",
	}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func SuccessResponse(data any) Response {
	return Response{
		Status:  StatusSuccess,
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
