package httpclient

import (
	"bytes"
	"encoding/json"
)

const unknownMessage = "Inconnue"

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// APIError is an envelope with success set to false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return "api error: " + e.Message }

// Unwrap decodes body as an Envelope and returns its data, or an APIError
// carrying the embedded message. An undecodable body is ErrNotFound.
func Unwrap(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, ErrNotFound
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = unknownMessage
		}
		return nil, &APIError{Message: msg}
	}
	if len(bytes.TrimSpace(env.Data)) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}
