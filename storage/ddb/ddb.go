/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/hirofumiymmto/sugarrecord/errors"
	"github.com/hirofumiymmto/sugarrecord/registry"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

// Store implements storage.Store[T] on top of AWS DynamoDB, using the
// index map registered for T to place entities in a single-table
// design.
type Store[T storage.Entity] struct {
	client    *sdk.Client
	tableName string
}

// NewClient initializes a DynamoDB client from static credentials.
func NewClient(accessKey, secretKey, region string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DynamoDB-backed store for type T.
func New[T storage.Entity](accessKey, secretKey, region, tableName string) (*Store[T], error) {
	client, err := NewClient(accessKey, secretKey, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return &Store[T]{client: client, tableName: tableName}, nil
}

// NewWithClient constructs a store around an existing client. Useful
// when several stores share one connection, and for tests.
func NewWithClient[T storage.Entity](client *sdk.Client, tableName string) *Store[T] {
	return &Store[T]{client: client, tableName: tableName}
}

// stagingContext accumulates writes until the Saver flushes them.
type stagingContext[T storage.Entity] struct {
	puts    []T
	deletes []string
	err     error
}

func (c *stagingContext[T]) Put(entity storage.Entity) {
	typed, ok := entity.(T)
	if !ok {
		var zero T
		c.err = errors.NewInvalidEntityError(fmt.Sprintf("%T", zero), fmt.Sprintf("%T", entity))
		return
	}
	c.puts = append(c.puts, typed)
}

func (c *stagingContext[T]) Delete(key string) {
	c.deletes = append(c.deletes, key)
}

// Operation executes op against a fresh staging context. The Saver
// flushes staged writes to DynamoDB one item at a time; the first
// failed write aborts the flush and is returned to the closure.
func (s *Store[T]) Operation(op func(storage.Context, storage.Saver)) {
	staging := &stagingContext[T]{}
	save := func() error {
		if staging.err != nil {
			return staging.err
		}

		ctx := context.Background()
		for _, e := range staging.puts {
			if err := s.putItem(ctx, e); err != nil {
				return errors.NewSaveError("dynamodb", err)
			}
		}
		for _, k := range staging.deletes {
			if err := s.deleteItem(ctx, k); err != nil {
				return errors.NewSaveError("dynamodb", err)
			}
		}
		staging.puts = nil
		staging.deletes = nil
		return nil
	}
	op(staging, save)
}

func (s *Store[T]) putItem(ctx context.Context, entity T) error {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return errors.ErrNoIndexMap
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return err
	}
	for field, value := range expanded {
		av[field] = stringAttr(value)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

func (s *Store[T]) deleteItem(ctx context.Context, key string) error {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return errors.ErrNoIndexMap
	}

	keyMap, err := buildKey(expandStringKey(indexMap, key))
	if err != nil {
		return fmt.Errorf("failed to build key for delete: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

// Background returns an independent handle over the same client; the
// DynamoDB client is safe for concurrent use.
func (s *Store[T]) Background() storage.Store[T] {
	return &Store[T]{client: s.client, tableName: s.tableName}
}
