package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	gsi1Name = "gsi1-index"
	gsi2Name = "gsi2-index"
)

var (
	// ErrTenantRequired is returned when a repository call omits the tenant id.
	ErrTenantRequired = errors.New("tenant id is required")

	// ErrVersionConflict is returned when an update loses the conditional-write
	// race: the item changed between the read and the write. Callers retry.
	ErrVersionConflict = errors.New("item version changed since read")
)

// Config is the explicit storage configuration injected at construction.
// The table name is never resolved from the environment inside a repository.
type Config struct {
	TableName string
}

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type persistable[T any] interface {
	*T
	entities.Entidade
}

// equalsFilter is a non-indexed post-filter applied to a query.
type equalsFilter struct {
	attr  string
	value string
}

// baseRepository implements the CRUD+lookup contract shared by all eight
// entity types over the single CRM table. Per-entity repositories supply the
// sort-key token and the item mapper pair; everything else is identical.
//
// Table layout:
//   - PK: pk / sk
//   - GSI1 (gsi1-index): gsi1pk / gsi1sk
//   - GSI2 (gsi2-index): gsi2pk / gsi2sk
//
// Every item also carries the tenant tag (tenantId) and a write counter
// (versao) used for optimistic concurrency on update.
type baseRepository[T any, PT persistable[T]] struct {
	ddb   DynamoAPI
	table string
	kind  string
	token string

	marshal   func(e T, tenantID string, versao int64) (map[string]types.AttributeValue, error)
	unmarshal func(item map[string]types.AttributeValue) (T, error)
}

func (r *baseRepository[T, PT]) wrap(op string, err error) error {
	return fmt.Errorf("%s: %s: %w", r.kind, op, err)
}

// List returns every entity of this type owned by the tenant. An empty
// tenant partition yields an empty slice, not an error.
func (r *baseRepository[T, PT]) List(ctx context.Context, tenantID string) ([]T, error) {
	return r.listFiltered(ctx, tenantID, "list", nil)
}

func (r *baseRepository[T, PT]) listFiltered(ctx context.Context, tenantID, op string, filter *equalsFilter) ([]T, error) {
	if tenantID == "" {
		return nil, r.wrap(op, ErrTenantRequired)
	}

	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: tenantPartition(tenantID)},
			":sk": &types.AttributeValueMemberS{Value: r.token + ":"},
		},
	}
	if filter != nil {
		in.FilterExpression = aws.String(filter.attr + " = :fv")
		in.ExpressionAttributeValues[":fv"] = &types.AttributeValueMemberS{Value: filter.value}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, r.wrap(op, err)
	}
	return r.unmarshalAll(out.Items, op)
}

// queryIndex serves the parent-scoped and attribute-scoped lookups. keyAttr
// names the index partition attribute (gsi1pk or gsi2pk).
func (r *baseRepository[T, PT]) queryIndex(ctx context.Context, tenantID, op, index, keyAttr, partition string, filter *equalsFilter) ([]T, error) {
	if tenantID == "" {
		return nil, r.wrap(op, ErrTenantRequired)
	}

	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: partition},
		},
	}
	if filter != nil {
		in.FilterExpression = aws.String(filter.attr + " = :fv")
		in.ExpressionAttributeValues[":fv"] = &types.AttributeValueMemberS{Value: filter.value}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, r.wrap(op, err)
	}
	return r.unmarshalAll(out.Items, op)
}

func (r *baseRepository[T, PT]) unmarshalAll(raw []map[string]types.AttributeValue, op string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, m := range raw {
		e, err := r.unmarshal(m)
		if err != nil {
			return nil, r.wrap(op, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// GetByID is a point lookup by primary key. Absent items return (nil, nil).
func (r *baseRepository[T, PT]) GetByID(ctx context.Context, tenantID, id string) (*T, error) {
	raw, err := r.getRaw(ctx, tenantID, id, "get")
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	e, err := r.unmarshal(raw)
	if err != nil {
		return nil, r.wrap("get", err)
	}
	return &e, nil
}

func (r *baseRepository[T, PT]) getRaw(ctx context.Context, tenantID, id, op string) (map[string]types.AttributeValue, error) {
	if tenantID == "" {
		return nil, r.wrap(op, ErrTenantRequired)
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            r.primaryKey(tenantID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, r.wrap(op, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// Create assigns a fresh id, stamps both timestamps and persists the full
// item guarded against id collisions.
func (r *baseRepository[T, PT]) Create(ctx context.Context, tenantID string, e T) (*T, error) {
	if tenantID == "" {
		return nil, r.wrap("create", ErrTenantRequired)
	}

	p := PT(&e)
	p.SetID(uuid.NewString())
	p.MarkCreated(time.Now().UTC())

	item, err := r.marshal(e, tenantID, 1)
	if err != nil {
		return nil, r.wrap("create", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		return nil, r.wrap("create", err)
	}
	return &e, nil
}

// update is the read-merge-write cycle behind every typed Update. The write
// is conditioned on the version read, so a concurrent writer surfaces as
// ErrVersionConflict instead of silently losing fields. Absent items return
// (nil, nil). A merge error aborts before anything is written.
func (r *baseRepository[T, PT]) update(ctx context.Context, tenantID, id string, merge func(PT) error) (*T, error) {
	raw, err := r.getRaw(ctx, tenantID, id, "update")
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	versao := itemVersion(raw)

	current, err := r.unmarshal(raw)
	if err != nil {
		return nil, r.wrap("update", err)
	}
	p := PT(&current)
	if err := merge(p); err != nil {
		return nil, r.wrap("update", err)
	}
	p.MarkUpdated(time.Now().UTC())

	item, err := r.marshal(current, tenantID, versao+1)
	if err != nil {
		return nil, r.wrap("update", err)
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}
	if versao == 0 {
		// Item written before versioning existed.
		in.ConditionExpression = aws.String("attribute_not_exists(versao)")
	} else {
		in.ConditionExpression = aws.String("versao = :lida")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":lida": &types.AttributeValueMemberN{Value: strconv.FormatInt(versao, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, r.wrap("update", ErrVersionConflict)
		}
		return nil, r.wrap("update", err)
	}
	return &current, nil
}

// Delete removes the item by primary key. Deleting an absent id is success;
// the store's delete-by-key is itself idempotent.
func (r *baseRepository[T, PT]) Delete(ctx context.Context, tenantID, id string) error {
	if tenantID == "" {
		return r.wrap("delete", ErrTenantRequired)
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.primaryKey(tenantID, id),
	})
	if err != nil {
		return r.wrap("delete", err)
	}
	return nil
}

func (r *baseRepository[T, PT]) primaryKey(tenantID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: tenantPartition(tenantID)},
		"sk": &types.AttributeValueMemberS{Value: entitySortKey(r.token, id)},
	}
}

func itemVersion(raw map[string]types.AttributeValue) int64 {
	n, ok := raw["versao"].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
