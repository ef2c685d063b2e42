package services

// APIError is the error services return for failures the client can act
// on. The Status field drives the HTTP status code; anything else
// surfaces as a 500.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func (a *APIError) Error() string {
	return a.Message
}
