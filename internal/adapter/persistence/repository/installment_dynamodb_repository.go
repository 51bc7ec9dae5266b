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
	defaultInstallmentsTableName = "installments"
	installmentsCreditIDIndex    = "credit_id-index"

	// DynamoDB caps TransactWriteItems at 100 actions per call.
	maxTransactWriteItems = 100
)

type installmentItem struct {
	ID          string `dynamodbav:"id"`
	CreditID    string `dynamodbav:"credit_id"`
	DueDate     string `dynamodbav:"due_date"`
	Amount      string `dynamodbav:"amount"`
	PaymentDate string `dynamodbav:"payment_date,omitempty"`
	Status      string `dynamodbav:"status"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: credit_id-index (PK: credit_id, SK: due_date)
//
// SaveAll writes each batch transactionally so a schedule is never half
// visible inside one batch.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) SaveAll(ctx context.Context, installments []entities.Installment) error {
	for start := 0; start < len(installments); start += maxTransactWriteItems {
		end := start + maxTransactWriteItems
		if end > len(installments) {
			end = len(installments)
		}

		actions := make([]types.TransactWriteItem, 0, end-start)
		for _, inst := range installments[start:end] {
			av, err := attributevalue.MarshalMap(toInstallmentItem(inst))
			if err != nil {
				return err
			}
			actions = append(actions, types.TransactWriteItem{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: actions,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *InstallmentDynamoRepository) ListByCreditID(ctx context.Context, creditID string) ([]entities.Installment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(installmentsCreditIDIndex),
		KeyConditionExpression: aws.String("credit_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: creditID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Installment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInstallmentItem(it))
	}
	return items, nil
}

func toInstallmentItem(i entities.Installment) installmentItem {
	it := installmentItem{
		ID:       i.ID,
		CreditID: i.CreditID,
		DueDate:  i.DueDate.UTC().Format(time.RFC3339Nano),
		Amount:   floatToString(i.Amount),
		Status:   string(i.Status),
	}
	if i.PaymentDate != nil {
		it.PaymentDate = i.PaymentDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	amount, _ := parseFloatField(it.Amount)
	inst := entities.Installment{
		ID:       it.ID,
		CreditID: it.CreditID,
		DueDate:  dueDate,
		Amount:   amount,
		Status:   entities.InstallmentStatus(it.Status),
	}
	if it.PaymentDate != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaymentDate); err == nil {
			inst.PaymentDate = &paidAt
		}
	}
	return inst
}
