package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jdwit/s3-to-dynamodb/internal/config"
	"github.com/jdwit/s3-to-dynamodb/internal/processor"
	"github.com/jdwit/s3-to-dynamodb/internal/targets"
	"log"
	"os"
)

func createSession(cfg config.Config) (*session.Session, error) {
	// explicit region takes precedence over AWS_REGION
	awsConfig := &aws.Config{Region: aws.String(config.Region)}
	if cfg.Endpoint != "" {
		// localstack
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.DisableSSL = aws.Bool(true)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	return session.NewSession(awsConfig)
}

func main() {
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatalln(err)
	}

	sess, err := createSession(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	p := processor.NewProcessor(s3.New(sess), targets.NewTarget(cfg, sess))

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		log.Println("running in AWS Lambda environment")
		lambda.Start(p.HandleLambdaEvent)
	} else {
		log.Println("running in cli mode")
		if len(os.Args) < 2 {
			log.Fatalln("s3 url is required as an argument")
		}
		err := p.HandleS3URL(context.Background(), os.Args[1])
		if err != nil {
			log.Fatalln(err)
		}
	}
}
