package repository

import (
	"context"
	"time"

	"microcredit_scoring/internal/domain/entities"
	"microcredit_scoring/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCreditsTableName = "credits"
	creditsClientIDIndex    = "client_id-index"
	creditsDecisionIndex    = "decision-index"
)

type creditItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	CreatedAt       string `dynamodbav:"created_at"`
	RequestedAmount string `dynamodbav:"requested_amount"`
	ApprovedAmount  string `dynamodbav:"approved_amount"`
	InterestRate    string `dynamodbav:"interest_rate"`
	DurationMonths  int    `dynamodbav:"duration_months"`
	Type            string `dynamodbav:"type"`
	Decision        string `dynamodbav:"decision"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	UpdatedAt       string `dynamodbav:"updated_at,omitempty"`
}

// CreditDynamoRepository persists Credit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: decision-index (PK: decision)
//
// Installments live in their own table keyed by credit id.

type CreditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditRepository = (*CreditDynamoRepository)(nil)

func NewCreditDynamoRepository(ddb *dynamodb.Client) *CreditDynamoRepository {
	return &CreditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDITS_TABLE", defaultCreditsTableName),
	}
}

func (r *CreditDynamoRepository) Create(ctx context.Context, c entities.Credit) (entities.Credit, error) {
	it := toCreditItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Credit{}, err
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
		return entities.Credit{}, err
	}
	return c, nil
}

func (r *CreditDynamoRepository) GetByID(ctx context.Context, id string) (entities.Credit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Credit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Credit{}, nil
	}

	var it creditItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credit{}, err
	}
	return fromCreditItem(it), nil
}

func (r *CreditDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Credit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(creditsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCreditItems(out.Items)
}

func (r *CreditDynamoRepository) ListByDecision(ctx context.Context, decision entities.Decision) ([]entities.Credit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(creditsDecisionIndex),
		KeyConditionExpression: aws.String("decision = :decision"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":decision": &types.AttributeValueMemberS{Value: string(decision)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCreditItems(out.Items)
}

func (r *CreditDynamoRepository) ListAll(ctx context.Context) ([]entities.Credit, error) {
	var credits []entities.Credit
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalCreditItems(out.Items)
		if err != nil {
			return nil, err
		}
		credits = append(credits, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return credits, nil
}

func (r *CreditDynamoRepository) Update(ctx context.Context, c entities.Credit) (entities.Credit, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #approved_amount = :approved_amount, #interest_rate = :interest_rate, #decision = :decision, #rejection_reason = :rejection_reason, #updated_at = :updated_at"
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved_amount":  &types.AttributeValueMemberS{Value: floatToString(c.ApprovedAmount)},
			":interest_rate":    &types.AttributeValueMemberS{Value: floatToString(c.InterestRate)},
			":decision":         &types.AttributeValueMemberS{Value: string(c.Decision)},
			":rejection_reason": &types.AttributeValueMemberS{Value: c.RejectionReason},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#approved_amount":  "approved_amount",
			"#interest_rate":    "interest_rate",
			"#decision":         "decision",
			"#rejection_reason": "rejection_reason",
			"#updated_at":       "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Credit{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Credit{}, nil
	}

	var it creditItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Credit{}, err
	}
	return fromCreditItem(it), nil
}

func unmarshalCreditItems(raw []map[string]types.AttributeValue) ([]entities.Credit, error) {
	items := make([]entities.Credit, 0, len(raw))
	for _, av := range raw {
		var it creditItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCreditItem(it))
	}
	return items, nil
}

func toCreditItem(c entities.Credit) creditItem {
	it := creditItem{
		ID:              c.ID,
		ClientID:        c.ClientID,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		RequestedAmount: floatToString(c.RequestedAmount),
		ApprovedAmount:  floatToString(c.ApprovedAmount),
		InterestRate:    floatToString(c.InterestRate),
		DurationMonths:  c.DurationMonths,
		Type:            string(c.Type),
		Decision:        string(c.Decision),
		RejectionReason: c.RejectionReason,
	}
	if !c.UpdatedAt.IsZero() {
		it.UpdatedAt = c.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromCreditItem(it creditItem) entities.Credit {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	requested, _ := parseFloatField(it.RequestedAmount)
	approved, _ := parseFloatField(it.ApprovedAmount)
	rate, _ := parseFloatField(it.InterestRate)
	c := entities.Credit{
		ID:              it.ID,
		ClientID:        it.ClientID,
		CreatedAt:       createdAt,
		RequestedAmount: requested,
		ApprovedAmount:  approved,
		InterestRate:    rate,
		DurationMonths:  it.DurationMonths,
		Type:            entities.CreditType(it.Type),
		Decision:        entities.Decision(it.Decision),
		RejectionReason: it.RejectionReason,
	}
	if it.UpdatedAt != "" {
		c.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	}
	return c
}
