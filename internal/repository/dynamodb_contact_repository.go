package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/portfolio/backend/internal/model"
)

const (
	contactPK   = "CONTACT"
	skSequence  = "SEQ#"
	skPrefixMsg = "MSG#"
)

// dynamodbAPI is the minimal DynamoDB interface required by DynamoContactRepository.
// Defined here for testability.
type dynamodbAPI interface {
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoContactRepository stores contact messages in a single DynamoDB table
// keyed by PK/SK. Ids come from an atomic counter item.
type DynamoContactRepository struct {
	api       dynamodbAPI
	tableName string
}

// Ensure DynamoContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*DynamoContactRepository)(nil)

// NewDynamoContactRepository creates a repository for tableName.
func NewDynamoContactRepository(api dynamodbAPI, tableName string) (*DynamoContactRepository, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &DynamoContactRepository{api: api, tableName: tableName}, nil
}

// msgSK zero-pads id so that lexical sort key order equals id order.
func msgSK(id int64) string {
	return fmt.Sprintf("%s%020d", skPrefixMsg, id)
}

// nextID atomically increments the sequence item and returns the new value.
func (r *DynamoContactRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: contactPK},
			"SK": &types.AttributeValueMemberS{Value: skSequence},
		},
		UpdateExpression: aws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("repository: next id: %w", err)
	}
	if out == nil {
		return 0, errors.New("repository: next id: empty response")
	}
	return int64Attr(out.Attributes, "seq")
}

// Save allocates an id and writes the message item.
func (r *DynamoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                messageItem(id, msg),
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		return fmt.Errorf("repository: Save: %w", err)
	}
	msg.ID = id
	return nil
}

// List queries every MSG# item in ascending id order, following pagination.
func (r *DynamoContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	var (
		messages []*model.ContactMessage
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.api.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: contactPK},
				":prefix": &types.AttributeValueMemberS{Value: skPrefixMsg},
			},
			ScanIndexForward:  aws.Bool(true),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("repository: List query: %w", err)
		}
		for _, item := range out.Items {
			m, err := itemToMessage(item)
			if err != nil {
				return nil, fmt.Errorf("repository: List unmarshal: %w", err)
			}
			messages = append(messages, m)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return messages, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Ping describes the table to confirm it exists and is reachable.
func (r *DynamoContactRepository) Ping(ctx context.Context) error {
	_, err := r.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return fmt.Errorf("repository: describe table: %w", err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no per-store resources.
func (r *DynamoContactRepository) Close() error { return nil }

func messageItem(id int64, msg *model.ContactMessage) map[string]types.AttributeValue {
	var message types.AttributeValue = &types.AttributeValueMemberNULL{Value: true}
	if msg.Message != nil {
		message = &types.AttributeValueMemberS{Value: *msg.Message}
	}
	return map[string]types.AttributeValue{
		"PK":      &types.AttributeValueMemberS{Value: contactPK},
		"SK":      &types.AttributeValueMemberS{Value: msgSK(id)},
		"id":      &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		"name":    &types.AttributeValueMemberS{Value: msg.Name},
		"email":   &types.AttributeValueMemberS{Value: msg.Email},
		"message": message,
	}
}

func itemToMessage(item map[string]types.AttributeValue) (*model.ContactMessage, error) {
	id, err := int64Attr(item, "id")
	if err != nil {
		return nil, err
	}
	name, _ := strAttr(item, "name")
	email, _ := strAttr(item, "email")
	m := &model.ContactMessage{ID: id, Name: name, Email: email}
	if text, err := strAttr(item, "message"); err == nil {
		m.Message = &text
	}
	return m, nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func int64Attr(item map[string]types.AttributeValue, key string) (int64, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
