// Package web defines common components for a web application.
package web

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into the response envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Data wraps the given payload into the response envelope.
func Data(data any) Response {
	return Response{Data: data}
}
