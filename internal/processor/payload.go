package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"net/url"
	"unicode/utf8"
)

// decodeKey undoes the form encoding S3 applies to keys in event notifications.
func decodeKey(key string) (string, error) {
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidKey, key, err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("%w %q: decodes to invalid UTF-8", ErrInvalidKey, key)
	}
	return decoded, nil
}

// parsePayload requires a JSON object with a non-empty string "id" and a "data" field of any type.
func parsePayload(body []byte) (types.Payload, error) {
	if !utf8.Valid(body) {
		return types.Payload{}, errors.New("content is not valid UTF-8")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return types.Payload{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if fields == nil {
		return types.Payload{}, errors.New("content is not a JSON object")
	}

	rawID, ok := fields["id"]
	if !ok {
		return types.Payload{}, errors.New(`missing field "id"`)
	}
	var id string
	if string(rawID) == "null" {
		return types.Payload{}, errors.New(`field "id" must be a string`)
	}
	if err := json.Unmarshal(rawID, &id); err != nil {
		return types.Payload{}, errors.New(`field "id" must be a string`)
	}
	if id == "" {
		return types.Payload{}, errors.New(`field "id" must not be empty`)
	}

	rawData, ok := fields["data"]
	if !ok {
		return types.Payload{}, errors.New(`missing field "data"`)
	}
	var data interface{}
	if err := json.Unmarshal(rawData, &data); err != nil {
		return types.Payload{}, fmt.Errorf(`invalid field "data": %w`, err)
	}

	return types.Payload{ID: id, Data: data, Fields: fields}, nil
}
