package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"printhub/internal/adapter/persistence/relational"
	"printhub/internal/adapter/persistence/repository"
	"printhub/internal/infrastructure/config"
	"printhub/internal/usecase/interfaces"
)

// Stores bundles the repositories of the configured backend.
// Orders is nil when the mirror table is not available.
type Stores struct {
	Requests interfaces.IOrderRequestRepository
	Orders   interfaces.IClientOrderRepository
	Clients  interfaces.IClientRepository
	History  interfaces.IStatusHistoryRepository
	Sequence interfaces.ICodeSequence

	Capabilities Capabilities

	ping  func(ctx context.Context) error
	close func() error
}

func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StorageBackend {
	case config.BackendDynamoDB:
		return openDynamo(ctx, cfg)
	case config.BackendPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func openDynamo(ctx context.Context, cfg *config.Config) (*Stores, error) {
	client, err := ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	tables := TableNames(cfg.DynamoDB)

	caps, err := ResolveCapabilities(ctx, config.BackendDynamoDB, cfg.MirrorTable, tables.ClientOrders, NewDynamoTableDetector(client))
	if err != nil {
		return nil, err
	}

	s := &Stores{
		Requests:     repository.NewOrderRequestDynamoRepository(client, tables),
		Clients:      repository.NewClientDynamoRepository(client, tables),
		History:      repository.NewStatusHistoryDynamoRepository(client, tables),
		Sequence:     repository.NewCodeSequenceDynamoRepository(client, tables),
		Capabilities: caps,
		ping: func(ctx context.Context) error {
			_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tables.OrderRequests)})
			return err
		},
	}
	if caps.MirrorEnabled {
		s.Orders = repository.NewClientOrderDynamoRepository(client, tables)
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Stores, error) {
	db, err := ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	caps, err := ResolveCapabilities(ctx, config.BackendPostgres, cfg.MirrorTable, relational.ClientOrdersTable, NewGormTableDetector(db))
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	s := &Stores{
		Requests:     relational.NewOrderRequestGormRepository(db),
		Clients:      relational.NewClientGormRepository(db),
		History:      relational.NewStatusHistoryGormRepository(db),
		Sequence:     relational.NewCodeSequenceGormRepository(db),
		Capabilities: caps,
		ping:         sqlDB.PingContext,
		close:        sqlDB.Close,
	}
	if caps.MirrorEnabled {
		s.Orders = relational.NewClientOrderGormRepository(db)
	}
	return s, nil
}
