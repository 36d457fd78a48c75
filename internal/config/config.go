package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// TableName is the DynamoDB table every record is written to
	TableName = "s3_to_dynamodb"
	// Region is the fixed region of the S3 and DynamoDB clients, AWS_REGION is ignored
	Region = "us-east-1"
)

type Config struct {
	Endpoint string // optional, e.g. a localstack endpoint
	DryRun   bool   // print records to stdout instead of writing them to DynamoDB
}

func LoadConfigFromEnv() (Config, error) {
	var dryRun bool
	if v := os.Getenv("DRY_RUN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid value for environment variable DRY_RUN: %q", v)
		}
		dryRun = b
	}

	return Config{
		Endpoint: os.Getenv("AWS_ENDPOINT"),
		DryRun:   dryRun,
	}, nil
}
