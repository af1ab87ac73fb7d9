package models_test

import (
	"testing"

	"github.com/mika/debt-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	cases := []struct {
		name     string
		paid     int64
		current  int64
		expected models.DebtStatus
	}{
		{"nothing paid", 0, 1000, models.ACTIVE},
		{"partially paid", 400, 600, models.PARTIAL},
		{"fully paid", 1000, 0, models.PAID},
		{"overshoot clamps to paid", 1100, -100, models.PAID},
		{"zero on both sides", 0, 0, models.PAID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, models.ComputeStatus(tc.paid, tc.current))
		})
	}
}

func TestOutstanding(t *testing.T) {
	debt := &models.Debt{CurrentAmount: 600}
	assert.Equal(t, int64(600), debt.Outstanding())

	debt.CurrentAmount = -50
	assert.Equal(t, int64(0), debt.Outstanding())
}

func TestPaymentsTotal(t *testing.T) {
	debt := &models.Debt{
		PaidAmount: 1000,
		Payments: []models.Payment{
			{Id: "p1", Amount: 400},
			{Id: "p2", Amount: 600},
		},
	}

	assert.Equal(t, debt.PaidAmount, debt.PaymentsTotal())
}
