package app

type RequestErrorCode string

const (
	ErrInvalidMonth RequestErrorCode = "INVALID_MONTH"
	ErrInvalidDate  RequestErrorCode = "INVALID_DATE"
	ErrInvalidLimit RequestErrorCode = "INVALID_LIMIT"
	ErrInvalidRatio RequestErrorCode = "INVALID_RATIO"
	ErrInvalidInput RequestErrorCode = "INVALID_INPUT"
)

// RequestError is returned for caller mistakes. Outer surfaces map it to a
// usage error or HTTP 400.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
