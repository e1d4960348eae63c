package repository

import (
	"context"
	"encoding/json"
	"sort"

	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentUpdatesTableName = "payment_updates"
	paymentUpdatesPaymentIDIndex   = "payment_id-index"
)

// dynamoAPI is the subset of *dynamodb.Client the repository needs.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type paymentUpdateItem struct {
	ID                 string `dynamodbav:"id"`
	PaymentID          string `dynamodbav:"payment_id"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderStatusCode int    `dynamodbav:"provider_status_code,omitempty"`
	Operations         string `dynamodbav:"operations"`
	ProviderResponse   string `dynamodbav:"provider_response,omitempty"`
}

// PaymentUpdateDynamoRepository persists PaymentUpdate audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)

type PaymentUpdateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentUpdateRepository = (*PaymentUpdateDynamoRepository)(nil)

func NewPaymentUpdateDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentUpdateDynamoRepository {
	return newPaymentUpdateDynamoRepository(ddb, tableName)
}

func newPaymentUpdateDynamoRepository(ddb dynamoAPI, tableName string) *PaymentUpdateDynamoRepository {
	return &PaymentUpdateDynamoRepository{
		ddb:       ddb,
		tableName: defaultString(tableName, defaultPaymentUpdatesTableName),
	}
}

func (r *PaymentUpdateDynamoRepository) Create(ctx context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error) {
	av, err := attributevalue.MarshalMap(toPaymentUpdateItem(u))
	if err != nil {
		return entities.PaymentUpdate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentUpdate{}, err
	}
	return u, nil
}

// ListByPaymentID returns every update of the payment, oldest first.
func (r *PaymentUpdateDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.PaymentUpdate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentUpdatesPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})

	items := make([]entities.PaymentUpdate, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentUpdateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentUpdateItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

func toPaymentUpdateItem(u entities.PaymentUpdate) paymentUpdateItem {
	return paymentUpdateItem{
		ID:                 u.ID,
		PaymentID:          u.PaymentID,
		Date:               formatTime(u.Date),
		Status:             string(u.Status),
		ProviderStatusCode: u.ProviderStatusCode,
		Operations:         string(u.Operations),
		ProviderResponse:   string(u.ProviderResponse),
	}
}

func fromPaymentUpdateItem(it paymentUpdateItem) entities.PaymentUpdate {
	u := entities.PaymentUpdate{
		ID:                 it.ID,
		PaymentID:          it.PaymentID,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentUpdateStatus(it.Status),
		ProviderStatusCode: it.ProviderStatusCode,
	}
	if it.Operations != "" {
		u.Operations = json.RawMessage(it.Operations)
	}
	if it.ProviderResponse != "" {
		u.ProviderResponse = json.RawMessage(it.ProviderResponse)
	}
	return u
}
