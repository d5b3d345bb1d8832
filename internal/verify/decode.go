package verify

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin/binding"
)

var (
	requestFields = []string{"context", "signature"}
	contextFields = []string{"recipient", "token", "amount", "nonce", "chainId", "timestamp"}
)

// decodeVerifyRequest parses a complete request body.
//
// encoding/json alone matches keys case-insensitively and keeps the last of
// duplicated keys, so two readers of the same body could disagree on which
// values were signed. Both object levels are scanned first: duplicate keys,
// case variants of known keys and data after the top-level object are errors.
// Unrelated extra keys are ignored.
func decodeVerifyRequest(body []byte) (*VerifyRequest, error) {
	fields, err := scanObject(body, requestFields, true)
	if err != nil {
		return nil, err
	}
	if raw, ok := fields["context"]; ok {
		if _, err := scanObject(raw, contextFields, false); err != nil {
			return nil, fmt.Errorf("context: %w", err)
		}
	}

	var req VerifyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// scanObject walks one JSON object and returns its members by exact key.
// With toplevel set, anything but whitespace after the object is rejected.
func scanObject(data []byte, known []string, toplevel bool) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, stderrors.New("expected a JSON object")
	}

	members := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		if _, dup := members[key]; dup {
			return nil, fmt.Errorf("duplicate field %q", key)
		}
		for _, name := range known {
			if key != name && strings.EqualFold(key, name) {
				return nil, fmt.Errorf("unknown field %q, expected %q", key, name)
			}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		members[key] = raw
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if toplevel {
		if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
			return nil, stderrors.New("trailing characters after JSON object")
		}
	}
	return members, nil
}
