package repository

import (
	"context"

	"kampung_chill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShopStateTableName = "shop-state"

type shopStateItem struct {
	RecordKey string `dynamodbav:"record_key"`
	Value     string `dynamodbav:"value"`
}

// ShopStateDynamoRepository persists the shop records in DynamoDB, one item
// per record key.
//
// Table requirements:
//   - PK: record_key (string)

type ShopStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStateStore = (*ShopStateDynamoRepository)(nil)

func NewShopStateDynamoRepository(ddb *dynamodb.Client) *ShopStateDynamoRepository {
	return &ShopStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHOP_STATE_TABLE", defaultShopStateTableName),
	}
}

func (r *ShopStateDynamoRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"record_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it shopStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Value), true, nil
}

func (r *ShopStateDynamoRepository) Save(ctx context.Context, key string, raw []byte) error {
	av, err := attributevalue.MarshalMap(shopStateItem{RecordKey: key, Value: string(raw)})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
