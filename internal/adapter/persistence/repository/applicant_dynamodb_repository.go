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

const defaultApplicantsTableName = "applicants"

type employmentItem struct {
	Salary       string `dynamodbav:"salary"`
	TenureYears  int    `dynamodbav:"tenure_years"`
	JobTitle     string `dynamodbav:"job_title"`
	ContractType string `dynamodbav:"contract_type"`
	Sector       string `dynamodbav:"sector"`
}

type professionItem struct {
	Income         string `dynamodbav:"income"`
	TaxID          string `dynamodbav:"tax_id"`
	ActivitySector string `dynamodbav:"activity_sector"`
	Activity       string `dynamodbav:"activity"`
}

type applicantItem struct {
	ID            string          `dynamodbav:"id"`
	FirstName     string          `dynamodbav:"first_name"`
	LastName      string          `dynamodbav:"last_name"`
	City          string          `dynamodbav:"city"`
	BirthDate     string          `dynamodbav:"birth_date,omitempty"`
	Dependents    int             `dynamodbav:"dependents"`
	HasInvestment bool            `dynamodbav:"has_investment"`
	HasSavings    bool            `dynamodbav:"has_savings"`
	MaritalStatus string          `dynamodbav:"marital_status"`
	CreatedAt     string          `dynamodbav:"created_at,omitempty"`
	Score         int             `dynamodbav:"score"`
	Kind          string          `dynamodbav:"kind"`
	Employment    *employmentItem `dynamodbav:"employment,omitempty"`
	Profession    *professionItem `dynamodbav:"profession,omitempty"`
}

// ApplicantDynamoRepository reads Applicant entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Applicants are provisioned by the client-onboarding pipeline; this service
// only reads them.

type ApplicantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApplicantRepository = (*ApplicantDynamoRepository)(nil)

func NewApplicantDynamoRepository(ddb *dynamodb.Client) *ApplicantDynamoRepository {
	return &ApplicantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICANTS_TABLE", defaultApplicantsTableName),
	}
}

func (r *ApplicantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Applicant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Applicant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Applicant{}, nil
	}

	var it applicantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Applicant{}, err
	}
	return fromApplicantItem(it), nil
}

func fromApplicantItem(it applicantItem) entities.Applicant {
	a := entities.Applicant{
		ID:            it.ID,
		FirstName:     it.FirstName,
		LastName:      it.LastName,
		City:          it.City,
		Dependents:    it.Dependents,
		HasInvestment: it.HasInvestment,
		HasSavings:    it.HasSavings,
		MaritalStatus: entities.MaritalStatus(it.MaritalStatus),
		Score:         it.Score,
		Kind:          entities.ApplicantKind(it.Kind),
	}
	if it.BirthDate != "" {
		if birthDate, err := time.Parse(time.RFC3339Nano, it.BirthDate); err == nil {
			a.BirthDate = &birthDate
		}
	}
	if it.CreatedAt != "" {
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	}
	if it.Employment != nil {
		salary, _ := parseFloatField(it.Employment.Salary)
		a.Employment = &entities.Employment{
			Salary:       salary,
			TenureYears:  it.Employment.TenureYears,
			JobTitle:     it.Employment.JobTitle,
			ContractType: it.Employment.ContractType,
			Sector:       it.Employment.Sector,
		}
	}
	if it.Profession != nil {
		income, _ := parseFloatField(it.Profession.Income)
		a.Profession = &entities.Profession{
			Income:         income,
			TaxID:          it.Profession.TaxID,
			ActivitySector: it.Profession.ActivitySector,
			Activity:       it.Profession.Activity,
		}
	}
	return a
}
