package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"printhub/internal/adapter/persistence/repository"
	"printhub/internal/infrastructure/config"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded configuration.
// When DYNAMODB_ENDPOINT is set (e.g. http://dynamodb:8000) requests go to that
// endpoint instead of the regional one.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func TableNames(cfg config.DynamoDBConfig) repository.TableNames {
	tables := repository.DefaultTableNames()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&tables.OrderRequests, cfg.OrderRequestsTable)
	set(&tables.OrderRequestItems, cfg.OrderRequestItemsTable)
	set(&tables.ClientOrders, cfg.ClientOrdersTable)
	set(&tables.Clients, cfg.ClientsTable)
	set(&tables.StatusHistory, cfg.StatusHistoryTable)
	set(&tables.CodeSequences, cfg.CodeSequencesTable)
	return tables
}
