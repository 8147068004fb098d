package premiumerrors

import (
	"encoding/json"
	"net/http"
)

const (
	// HeaderTraceID is the standard header name for trace/request IDs.
	HeaderTraceID = "X-Request-Id"

	// HeaderErrorCode carries the bare code name so proxies and analytics
	// can key on it without parsing the body.
	HeaderErrorCode = "X-Premium-Error"
)

// Write writes a consistent JSON error envelope to the response.
// If TraceID is missing on the error, it tries to derive it from the request.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	e := From(err)
	if e == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if e.TraceID == "" {
		if id := TraceIDFromRequest(r); id != "" {
			e = e.WithTraceID(id)
		}
	}

	if e.TraceID != "" {
		w.Header().Set(HeaderTraceID, e.TraceID)
	}
	w.Header().Set(HeaderErrorCode, string(e.Code))

	status := e.Status
	if status == 0 {
		status = defaultStatus(e.Code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(e)
}
