package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1048576 // 1MB

// ReadJSON decodes a single JSON value from the request body into data.
func ReadJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return err
	}

	// Reject bodies holding more than one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only have a single JSON value")
	}
	return nil
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	return err
}

// ErrorJSON writes an {error} body with the given status code.
func ErrorJSON(w http.ResponseWriter, status int, err error) {
	payload := struct {
		Error string `json:"error"`
	}{Error: err.Error()}
	_ = WriteJSON(w, status, payload)
}

// BadRequest responds with 400 and the error message.
func BadRequest(w http.ResponseWriter, err error) {
	ErrorJSON(w, http.StatusBadRequest, err)
}

// NotFound responds with 404 and the error message.
func NotFound(w http.ResponseWriter, err error) {
	ErrorJSON(w, http.StatusNotFound, err)
}

// ServerError responds with 500 and a generic message; the underlying
// detail stays in the server log.
func ServerError(w http.ResponseWriter, message string) {
	ErrorJSON(w, http.StatusInternalServerError, errors.New(message))
}

// Unauthorized responds with 401 using the auth response shape.
func Unauthorized(w http.ResponseWriter, message string) {
	payload := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: message}
	_ = WriteJSON(w, http.StatusUnauthorized, payload)
}

// ReadIDParam parses a numeric path parameter.
func ReadIDParam(param, name string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(param, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}
