package targets

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"time"
)

type StdoutTarget struct{}

func (s *StdoutTarget) PutRecord(_ context.Context, record types.Record) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling record to JSON: %w", err)
	}
	fmt.Printf("[%s] Record: %s\n", time.UnixMilli(record.Timestamp).UTC().Format(time.RFC3339), jsonData)

	return nil
}

func NewStdoutTarget() *StdoutTarget {
	return &StdoutTarget{}
}
