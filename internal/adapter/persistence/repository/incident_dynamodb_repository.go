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
	defaultIncidentsTableName = "incidents"
	incidentsApplicantIDIndex = "applicant_id-index"
)

type incidentItem struct {
	ID            string `dynamodbav:"id"`
	InstallmentID string `dynamodbav:"installment_id"`
	ApplicantID   string `dynamodbav:"applicant_id"`
	Date          string `dynamodbav:"date"`
	ScoreImpact   int    `dynamodbav:"score_impact"`
	Type          string `dynamodbav:"type"`
}

// IncidentDynamoRepository reads payment incidents from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: applicant_id-index (PK: applicant_id, SK: date)
//
// Incidents are recorded by the collections pipeline; scoring only reads
// them.

type IncidentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIncidentRepository = (*IncidentDynamoRepository)(nil)

func NewIncidentDynamoRepository(ddb *dynamodb.Client) *IncidentDynamoRepository {
	return &IncidentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INCIDENTS_TABLE", defaultIncidentsTableName),
	}
}

func (r *IncidentDynamoRepository) ListRecent(ctx context.Context, applicantID string, window time.Duration) ([]entities.Incident, error) {
	cutoff := time.Now().UTC().Add(-window).Format(time.RFC3339Nano)

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(incidentsApplicantIDIndex),
		KeyConditionExpression: aws.String("applicant_id = :aid AND #date >= :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid":    &types.AttributeValueMemberS{Value: applicantID},
			":cutoff": &types.AttributeValueMemberS{Value: cutoff},
		},
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Incident, 0, len(out.Items))
	for _, raw := range out.Items {
		var it incidentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromIncidentItem(it))
	}
	return items, nil
}

func fromIncidentItem(it incidentItem) entities.Incident {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Incident{
		ID:            it.ID,
		InstallmentID: it.InstallmentID,
		ApplicantID:   it.ApplicantID,
		Date:          date,
		ScoreImpact:   it.ScoreImpact,
		Type:          it.Type,
	}
}
