package database

import (
	"context"
	"testing"

	"paypal_connector/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %s", awsCfg.Region)
	}

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}

	ep, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "sa-east-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.URL != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %s", ep.URL)
	}
}

func TestNewDynamoDBConfig_NoEndpoint(t *testing.T) {
	awsCfg, err := NewDynamoDBConfig(context.Background(), config.Config{AWSRegion: "us-east-1", AWSAccessKeyID: "a", AWSSecretAccessKey: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.EndpointResolverWithOptions != nil {
		t.Fatalf("expected default endpoint resolution")
	}
}
