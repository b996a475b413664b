package response

import (
	"encoding/json"
	"net/http"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

const (
	ActionHome   = "home"
	ActionReload = "reload"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

type Action struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type FallbackDetail struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Fallback is the body served when a handler panics.
type Fallback struct {
	Error   string          `json:"error"`
	Actions []Action        `json:"actions"`
	Detail  *FallbackDetail `json:"detail,omitempty"`
}

// NewFallback offers a way back home and a retry of the failed request URI.
func NewFallback(requestURI string) Fallback {
	return Fallback{
		Error: constant.ResponseErrorUnexpected,
		Actions: []Action{
			{Name: ActionHome, Href: "/"},
			{Name: ActionReload, Href: requestURI},
		},
	}
}

// WithFallback sends the error boundary response
func WithFallback(writer http.ResponseWriter, fallback Fallback) {
	response(writer, http.StatusInternalServerError, fallback)
}

// WithText sends a plain text body
func WithText(writer http.ResponseWriter, code int, text string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(text)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
