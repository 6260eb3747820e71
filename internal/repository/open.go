package repository

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/portfolio/backend/internal/config"
)

// Open returns the ContactRepository selected by cfg.StoreDriver.
// The caller owns the returned store and must Close it.
func Open(ctx context.Context, cfg config.Config) (ContactRepository, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		repo, err := OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverPostgres:
		repo, err := OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		repo, err := NewDynamoContactRepository(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
