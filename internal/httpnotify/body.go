package httpnotify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodySize bounds how much of an error response is buffered for message
// extraction. The rest of the body is left unread on the connection.
const maxBodySize = 1 << 20

// readBody buffers up to maxBodySize bytes of resp.Body and replaces it with a
// reader replaying that prefix followed by the unread remainder, so callers
// can still read the whole response. Closing it closes the original body.
// truncated is true when the body continues past the buffered prefix.
func readBody(resp *http.Response) (prefix []byte, truncated bool, err error) {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, false, nil
	}

	original := resp.Body
	prefix, err = io.ReadAll(io.LimitReader(original, maxBodySize+1))
	resp.Body = &replayBody{
		Reader: io.MultiReader(bytes.NewReader(prefix), original),
		Closer: original,
	}
	return prefix, len(prefix) > maxBodySize, err
}

type replayBody struct {
	io.Reader
	io.Closer
}

// payloadMessage extracts a user-facing message from a JSON error payload.
// It returns parsed=false when body is not a JSON object. Fields are checked
// in order: "message", then "error" as a string, then "error.message".
//
// A truncated body is scanned up to where it was cut: fields found before
// that point are used, and it counts as parsed when at least one was found.
func payloadMessage(body []byte, truncated bool) (message string, parsed bool) {
	fields, complete := scanFields(body, "message", "error")
	if !complete && (!truncated || len(fields) == 0) {
		return "", false
	}

	if msg := stringField(fields["message"]); msg != "" {
		return msg, true
	}
	if msg := stringField(fields["error"]); msg != "" {
		return msg, true
	}

	var nested struct {
		Message string `json:"message"`
	}
	if raw, ok := fields["error"]; ok && json.Unmarshal(raw, &nested) == nil {
		return strings.TrimSpace(nested.Message), true
	}
	return "", true
}

// scanFields walks the top-level JSON object in body and keeps the raw values
// of the named keys; a repeated key keeps its last value. complete is false
// when body is not a single well-formed object.
func scanFields(body []byte, keys ...string) (fields map[string]json.RawMessage, complete bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}

	fields = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fields, false
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fields, false
		}
		for _, k := range keys {
			if key == k {
				fields[key] = raw
			}
		}
	}

	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return fields, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fields, false
	}
	return fields, true
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// newStatusError builds the error for a non-2xx response. Message holds the
// payload message, or "" when there is none. Body holds at most the buffered
// prefix of the response.
func newStatusError(resp *http.Response) *StatusError {
	body, truncated, readErr := readBody(resp)
	serr := &StatusError{Code: resp.StatusCode, Body: body}
	if readErr != nil {
		serr.Err = fmt.Errorf("%w: read body: %w", ErrUnparseableBody, readErr)
		return serr
	}

	message, parsed := payloadMessage(body, truncated)
	if !parsed {
		serr.Err = ErrUnparseableBody
	}
	serr.Message = message
	return serr
}
