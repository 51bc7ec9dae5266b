package request

import (
	"errors"
	"testing"

	"microcredit_scoring/internal/domain/entities"
)

func TestCreditApplicationRequest_ResolveClientID(t *testing.T) {
	r := CreditApplicationRequest{ClientID: " app-123 "}
	if got := r.ResolveClientID(); got != "app-123" {
		t.Fatalf("expected app-123, got %q", got)
	}
	r2 := CreditApplicationRequest{ClientID: "   "}
	if got := r2.ResolveClientID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCreditApplicationRequest_ResolveCreditType(t *testing.T) {
	cases := []struct {
		in   string
		want entities.CreditType
	}{
		{in: "real_estate", want: entities.CreditTypeRealEstate},
		{in: "immobilier", want: entities.CreditTypeRealEstate},
		{in: " AUTO ", want: entities.CreditTypeAuto},
		{in: "consumer", want: entities.CreditTypeConsumer},
		{in: "consommation", want: entities.CreditTypeConsumer},
		{in: "micro_credit", want: entities.CreditTypeMicroCredit},
		{in: "microcredit", want: entities.CreditTypeMicroCredit},
		{in: "other", want: entities.CreditTypeOther},
	}
	for _, tc := range cases {
		r := CreditApplicationRequest{CreditType: tc.in}
		got, err := r.ResolveCreditType()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}

	r := CreditApplicationRequest{CreditType: "mortgage"}
	if _, err := r.ResolveCreditType(); !errors.Is(err, ErrUnknownCreditType) {
		t.Fatalf("expected ErrUnknownCreditType, got %v", err)
	}
}

func TestManualRejectionRequest_ResolveReason(t *testing.T) {
	r := ManualRejectionRequest{Reason: "  income not verifiable  "}
	if got := r.ResolveReason(); got != "income not verifiable" {
		t.Fatalf("expected trimmed reason, got %q", got)
	}
}
