package entities

import "time"

// MaritalStatus of an applicant, used by the complementary-criteria sub-score
// and by the real-estate special criteria.

type MaritalStatus string

const (
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
)

// ApplicantKind discriminates the applicant variant. Exactly one of
// Applicant.Employment / Applicant.Profession is set, matching the kind.

type ApplicantKind string

const (
	ApplicantKindEmployee     ApplicantKind = "employee"
	ApplicantKindProfessional ApplicantKind = "self_employed"
)

// Employment holds the salaried-employee variant data.
type Employment struct {
	Salary       float64 `json:"salary"`
	TenureYears  int     `json:"tenure_years"`
	JobTitle     string  `json:"job_title"`
	ContractType string  `json:"contract_type"`
	Sector       string  `json:"sector"`
}

// Profession holds the self-employed professional variant data.
type Profession struct {
	Income         float64 `json:"income"`
	TaxID          string  `json:"tax_id"`
	ActivitySector string  `json:"activity_sector"`
	Activity       string  `json:"activity"`
}

// Applicant is a borrower profile persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the variant is flattened into the item behind a "kind" attribute
//
// The variant is immutable after creation; scoring resolves income through
// PrimaryIncome instead of branching on the kind at every call site.

type Applicant struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	City          string        `json:"city"`
	BirthDate     *time.Time    `json:"birth_date,omitempty"`
	Dependents    int           `json:"dependents"`
	HasInvestment bool          `json:"has_investment"`
	HasSavings    bool          `json:"has_savings"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	CreatedAt     time.Time     `json:"created_at"`
	Score         int           `json:"score"`

	Kind       ApplicantKind `json:"kind"`
	Employment *Employment   `json:"employment,omitempty"`
	Profession *Profession   `json:"profession,omitempty"`
}

// PrimaryIncome resolves the income of the active variant. An applicant with
// no variant data scores as having no income.
func (a Applicant) PrimaryIncome() float64 {
	switch a.Kind {
	case ApplicantKindEmployee:
		if a.Employment != nil {
			return a.Employment.Salary
		}
	case ApplicantKindProfessional:
		if a.Profession != nil {
			return a.Profession.Income
		}
	}
	return 0
}

// AgeAt returns the applicant's age in full years at the given moment and
// whether a birth date was available at all.
func (a Applicant) AgeAt(now time.Time) (int, bool) {
	if a.BirthDate == nil {
		return 0, false
	}
	return fullYearsBetween(*a.BirthDate, now), true
}

// RelationshipYearsAt returns the full years since account creation.
func (a Applicant) RelationshipYearsAt(now time.Time) int {
	if a.CreatedAt.IsZero() {
		return 0
	}
	return fullYearsBetween(a.CreatedAt, now)
}

func fullYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.YearDay() < from.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
