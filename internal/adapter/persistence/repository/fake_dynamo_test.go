package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single-table stand-in. It evaluates only the
// expressions the repositories actually emit: the pk/begins_with key
// condition, index partition equality, single-attribute equality filters and
// the conditional-put guards.
type fakeDynamo struct {
	order []string
	items map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func itemKey(item map[string]types.AttributeValue) string {
	return strAttr(item, "pk") + "|" + strAttr(item, "sk")
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	s, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return s.Value
}

func numAttr(item map[string]types.AttributeValue, name string) string {
	n, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return ""
	}
	return n.Value
}

func (f *fakeDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	item := f.items[itemKey(params.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key := itemKey(params.Item)
	existing, exists := f.items[key]

	if params.ConditionExpression != nil {
		switch cond := *params.ConditionExpression; cond {
		case "attribute_not_exists(pk)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_not_exists(versao)":
			if exists && numAttr(existing, "versao") != "" {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "versao = :lida":
			lida, _ := params.ExpressionAttributeValues[":lida"].(*types.AttributeValueMemberN)
			if !exists || lida == nil || numAttr(existing, "versao") != lida.Value {
				return nil, &types.ConditionalCheckFailedException{}
			}
		default:
			return nil, fmt.Errorf("fakeDynamo: unsupported condition %q", cond)
		}
	}

	if !exists {
		f.order = append(f.order, key)
	}
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cond := ""
	if params.KeyConditionExpression != nil {
		cond = *params.KeyConditionExpression
	}
	pk, _ := params.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS)
	if pk == nil {
		return nil, fmt.Errorf("fakeDynamo: missing :pk")
	}

	var match func(map[string]types.AttributeValue) bool
	switch {
	case cond == "pk = :pk AND begins_with(sk, :sk)":
		sk, _ := params.ExpressionAttributeValues[":sk"].(*types.AttributeValueMemberS)
		if sk == nil {
			return nil, fmt.Errorf("fakeDynamo: missing :sk")
		}
		match = func(it map[string]types.AttributeValue) bool {
			return strAttr(it, "pk") == pk.Value && strings.HasPrefix(strAttr(it, "sk"), sk.Value)
		}
	case strings.HasSuffix(cond, " = :pk"):
		// Index partition equality; items without the key attribute are not
		// in the index.
		keyAttr := strings.TrimSuffix(cond, " = :pk")
		match = func(it map[string]types.AttributeValue) bool {
			return strAttr(it, keyAttr) == pk.Value
		}
	default:
		return nil, fmt.Errorf("fakeDynamo: unsupported key condition %q", cond)
	}

	filter := func(map[string]types.AttributeValue) bool { return true }
	if params.FilterExpression != nil {
		fe := *params.FilterExpression
		if !strings.HasSuffix(fe, " = :fv") {
			return nil, fmt.Errorf("fakeDynamo: unsupported filter %q", fe)
		}
		attr := strings.TrimSuffix(fe, " = :fv")
		fv, _ := params.ExpressionAttributeValues[":fv"].(*types.AttributeValueMemberS)
		if fv == nil {
			return nil, fmt.Errorf("fakeDynamo: missing :fv")
		}
		filter = func(it map[string]types.AttributeValue) bool {
			return strAttr(it, attr) == fv.Value
		}
	}

	out := &dynamodb.QueryOutput{}
	for _, key := range f.order {
		it, ok := f.items[key]
		if !ok {
			continue
		}
		if match(it) && filter(it) {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, itemKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}
