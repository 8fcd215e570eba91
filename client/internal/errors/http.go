package errors

import "net/http"

// NewHTTPError builds the APIError for a non-2xx response.
func NewHTTPError(method, url string, statusCode int, body string) *APIError {
	return &APIError{
		Category:   categoryFor(statusCode),
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
	}
}

func categoryFor(statusCode int) Category {
	switch {
	case statusCode == http.StatusUnauthorized:
		return Unauthorized
	case statusCode >= 400 && statusCode < 500:
		return ClientError
	case statusCode >= 500 && statusCode < 600:
		return ServerError
	default:
		return Unexpected
	}
}
