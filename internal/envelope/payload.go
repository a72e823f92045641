package envelope

const (
	statusError   = "error"
	statusSuccess = "success"

	googleDomain = "global"
	googleReason = "invalid"
)

// ErrorPayload is the JSON body of every error response.
// @Description Error envelope
type ErrorPayload struct {
	Status string      `json:"status" example:"error"`
	Error  ErrorDetail `json:"error"`
} // @name ErrorPayload

// ErrorDetail carries the fault description.
// Errors and Status are only present in Google compatibility mode.
type ErrorDetail struct {
	Code    int           `json:"code" example:"400"`
	Title   string        `json:"title" example:"Bad request"`
	Message string        `json:"message" example:"q is not defined in the body (JSON) of request."`
	Debug   string        `json:"debug,omitempty"`
	Errors  []GoogleError `json:"errors,omitempty"`
	Status  string        `json:"status,omitempty" example:"INVALID_ARGUMENT"`
} // @name ErrorDetail

// GoogleError is one entry of the Google APIs error list.
type GoogleError struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
} // @name GoogleError

// SuccessPayload is the JSON body of enveloped success responses.
// @Description Success envelope
type SuccessPayload struct {
	Status  string      `json:"status" example:"success"`
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
} // @name SuccessPayload
