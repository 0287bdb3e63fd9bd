package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Barista/pkg/auth"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "UNPROCESSABLE Request",
	http.StatusInternalServerError: "Internal Server Error",
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// authErrorEnvelope carries description instead of message.
type authErrorEnvelope struct {
	Success     bool   `json:"success"`
	Error       int    `json:"error"`
	Description string `json:"description"`
}

type responder struct {
	logger *zap.Logger
}

func (s responder) respond(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding response", zap.Error(err))
	}
}

func (s responder) error(w http.ResponseWriter, code int) {
	message, ok := errorMessages[code]
	if !ok {
		message = http.StatusText(code)
	}

	s.respond(w, code, errorEnvelope{Success: false, Error: code, Message: message})
}

func (s responder) authError(w http.ResponseWriter, _ *http.Request, err *auth.Error) {
	s.respond(w, err.StatusCode, authErrorEnvelope{Success: false, Error: err.StatusCode, Description: err.Description})
}
