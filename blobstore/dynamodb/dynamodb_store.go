// Package dynamodb provides a blobstore.Store backed by a DynamoDB table,
// one item per key.
//
// Table schema:
//   - Partition key: pk (string) - the storage key
//   - Attribute: data (binary) - the snapshot bytes
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name markbook \
//	  --attribute-definitions AttributeName=pk,AttributeType=S \
//	  --key-schema AttributeName=pk,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
//
// Snapshots comfortably fit DynamoDB's 400 KB item limit; a class worth of
// rows serializes to a few kilobytes.
package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/markbook/blobstore"
)

// Client is the interface for the DynamoDB operations the store uses.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store implements blobstore.Store on a DynamoDB table.
type Store struct {
	client    Client
	tableName string
}

// Ensure Store implements blobstore.Store
var _ blobstore.Store = (*Store)(nil)

// NewStore creates a new DynamoDB-backed store writing to tableName.
func NewStore(client Client, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// Get returns the value stored under key. Reads are strongly consistent
// so a session always observes its own prior save.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if len(resp.Item) == 0 {
		return nil, blobstore.ErrNotFound
	}

	attr, ok := resp.Item["data"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, fmt.Errorf("invalid data attribute for key %q", key)
	}
	return attr.Value, nil
}

// Put writes the value under key, replacing any prior item.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"pk":   &types.AttributeValueMemberS{Value: key},
			"data": &types.AttributeValueMemberB{Value: data},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// Delete removes the item under key. Deleting an absent key is not an
// error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
