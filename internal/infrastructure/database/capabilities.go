package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"printhub/internal/infrastructure/config"
)

// TableDetector reports whether a table exists in the active backend.
type TableDetector interface {
	HasTable(ctx context.Context, name string) (bool, error)
}

type DescribeTableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type DynamoTableDetector struct {
	api DescribeTableAPI
}

func NewDynamoTableDetector(api DescribeTableAPI) *DynamoTableDetector {
	return &DynamoTableDetector{api: api}
}

func (p *DynamoTableDetector) HasTable(ctx context.Context, name string) (bool, error) {
	_, err := p.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return true, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
		return false, nil
	}
	return false, fmt.Errorf("describe table %s: %w", name, err)
}

type GormTableDetector struct {
	db *gorm.DB
}

func NewGormTableDetector(db *gorm.DB) *GormTableDetector {
	return &GormTableDetector{db: db}
}

func (p *GormTableDetector) HasTable(ctx context.Context, name string) (bool, error) {
	return p.db.WithContext(ctx).Migrator().HasTable(name), nil
}

// Capabilities is resolved once at startup and never re-checked.
type Capabilities struct {
	Backend       string `json:"backend"`
	MirrorTable   string `json:"mirror_table"`
	MirrorEnabled bool   `json:"mirror_enabled"`
}

func ResolveCapabilities(ctx context.Context, backend, mode, table string, detector TableDetector) (Capabilities, error) {
	caps := Capabilities{Backend: backend, MirrorTable: table}

	switch mode {
	case config.MirrorDisabled:
		caps.MirrorEnabled = false
	case config.MirrorEnabled:
		caps.MirrorEnabled = true
	case config.MirrorAuto, "":
		ok, err := detector.HasTable(ctx, table)
		if err != nil {
			return caps, fmt.Errorf("detect mirror table: %w", err)
		}
		caps.MirrorEnabled = ok
	default:
		return caps, fmt.Errorf("unknown mirror mode %q", mode)
	}

	logrus.WithFields(logrus.Fields{
		"component":      "capabilities",
		"backend":        backend,
		"mode":           mode,
		"table":          table,
		"mirror_enabled": caps.MirrorEnabled,
	}).Info("storage capabilities resolved")
	return caps, nil
}
