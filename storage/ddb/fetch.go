/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hirofumiymmto/sugarrecord/errors"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

// Fetch compiles the request into a DynamoDB Query, unmarshals the
// returned items into T, and then applies the request's in-memory form
// (predicate, ordering, limit) to the page that came back. A request
// without a key condition cannot be served by this backend.
func (s *Store[T]) Fetch(ctx context.Context, req *storage.Request[T]) ([]T, error) {
	if req.KeyCondition == "" {
		return nil, errors.NewInvalidRequestError("dynamodb", "key condition required")
	}

	values, err := marshalValues(req.Values)
	if err != nil {
		return nil, errors.NewStorageError("fetch", err)
	}

	input := &sdk.QueryInput{
		TableName:                 &s.tableName,
		KeyConditionExpression:    &req.KeyCondition,
		ExpressionAttributeValues: values,
		FilterExpression:          req.Filter,
		IndexName:                 req.Index,
		ScanIndexForward:          req.Ascending,
	}

	out, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, errors.NewStorageError("query", err)
	}

	results := make([]T, 0, len(out.Items))
	for _, item := range out.Items {
		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err != nil {
			return nil, errors.NewStorageError("unmarshal", err)
		}
		results = append(results, entity)
	}

	return req.Apply(results), nil
}

// marshalValues converts the request's placeholder values into
// DynamoDB attribute values.
func marshalValues(values map[string]any) (map[string]types.AttributeValue, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[string]types.AttributeValue, len(values))
	for placeholder, v := range values {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for %s: %w", placeholder, err)
		}
		out[placeholder] = av
	}
	return out, nil
}
