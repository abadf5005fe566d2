package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// CatalogKey is the fixed partition key the whole catalog lives under.
const CatalogKey = "drunkpenguins_games_data"

type catalogItem struct {
	PK        string    `dynamodbav:"PK"`
	Payload   string    `dynamodbav:"Payload"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

type DynamoCatalogStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoCatalogStorage) Load(ctx context.Context) (*rating.Catalog, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": CatalogKey})
	if err != nil {
		logging.Log.Errorf("CATALOG: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CATALOG: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrCatalogNotFound
	}

	var item catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("CATALOG: failed to unmarshal item: %v", err)
		return nil, err
	}

	var catalog rating.Catalog
	if err := json.Unmarshal([]byte(item.Payload), &catalog); err != nil {
		logging.Log.Errorf("CATALOG: failed to decode payload: %v", err)
		return nil, err
	}
	return &catalog, nil
}

func (s *DynamoCatalogStorage) Save(ctx context.Context, catalog *rating.Catalog) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		logging.Log.Errorf("CATALOG: failed to encode payload: %v", err)
		return err
	}

	item, err := attributevalue.MarshalMap(catalogItem{
		PK:        CatalogKey,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("CATALOG: failed to marshal item: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("CATALOG: PUT storage failed: %v", err)
		return err
	}
	return nil
}
