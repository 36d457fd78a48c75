package types

import "encoding/json"

// Payload is the JSON document stored in a source object.
type Payload struct {
	ID     string
	Data   interface{}
	Fields map[string]json.RawMessage // the complete document, used for logging
}

// Record is the item written to the table for every ingested object.
type Record struct {
	ID        string      `json:"id" dynamodbav:"id"`
	Timestamp int64       `json:"timestamp" dynamodbav:"timestamp"` // unix milliseconds
	Data      interface{} `json:"data" dynamodbav:"data"`
}
