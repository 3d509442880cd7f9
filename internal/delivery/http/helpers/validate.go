package helpers

import (
	"encoding/json"
	"net/http"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns an error message; empty means valid.
type Validator interface {
	Validate() string
}

// DecodeAndValidate decodes the request body into dest and, if dest
// implements Validator, runs Validate(). On decode or validation
// failure it writes a 400 {"error": ...} response and returns false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if msg := v.Validate(); msg != "" {
			WriteError(w, http.StatusBadRequest, msg)
			return false
		}
	}
	return true
}
