package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the single response shape every route returns.
// Success responses carry the payload under a route-specific key
// ("lead", "projects", ...); failures carry only the error message.
type Envelope struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Data    map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Data into the top level so callers see
// {"success":true,"lead":{...}} rather than a nested data object.
func (e Envelope) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(e.Data)+2)
	m["success"] = e.Success
	if e.Error != "" {
		m["error"] = e.Error
	}
	for k, v := range e.Data {
		m[k] = v
	}
	return json.Marshal(m)
}

// RespondSuccess writes a success envelope with the given payload fields.
// Marshals before writing headers so an encoding failure can still
// become a clean 500.
func RespondSuccess(w http.ResponseWriter, status int, data map[string]interface{}) {
	payload, err := json.Marshal(Envelope{Success: true, Data: data})
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes a failure envelope with the given status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(Envelope{Success: false, Error: message})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
