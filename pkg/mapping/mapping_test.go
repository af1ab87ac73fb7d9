package mapping_test

import (
	"testing"

	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/mapping"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		cases := map[string]int64{
			"10.00":  1000,
			"0.01":   1,
			"120.5":  12050,
			"7":      700,
			"999.99": 99999,
		}
		for input, expected := range cases {
			minor, err := mapping.ParseAmount(input)
			assert.NoError(t, err, input)
			assert.Equal(t, expected, minor, input)
		}
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := mapping.ParseAmount("ten dollars")
		assert.Error(t, err)
	})

	t.Run("Sub-cent precision is rejected", func(t *testing.T) {
		_, err := mapping.ParseAmount("10.005")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "two decimal places")
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.00", mapping.FormatAmount(1000))
	assert.Equal(t, "0.01", mapping.FormatAmount(1))
	assert.Equal(t, "-4.50", mapping.FormatAmount(-450))
	assert.Equal(t, "0.00", mapping.FormatAmount(0))
}

func TestToApiDebt(t *testing.T) {
	debt := &models.Debt{
		Id:               "debt-1",
		OwnerId:          "owner-1",
		Kind:             models.LENT,
		CounterpartyName: "Alice",
		OriginalAmount:   1000,
		PaidAmount:       400,
		CurrentAmount:    600,
		Status:           models.PARTIAL,
		Currency:         "USD",
		Payments:         []models.Payment{{Id: "p1", Amount: 400}},
		Version:          2,
	}

	apiDebt := mapping.ToApiDebt(debt)

	assert.Equal(t, "10.00", apiDebt.OriginalAmount)
	assert.Equal(t, "4.00", apiDebt.PaidAmount)
	assert.Equal(t, "6.00", apiDebt.CurrentAmount)
	assert.Equal(t, string(models.PARTIAL), apiDebt.Status)
	assert.Len(t, apiDebt.Payments, 1)
	assert.Equal(t, "4.00", apiDebt.Payments[0].Amount)
}

func TestToDomainNewDebt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		apiDebt := &api.NewDebt{
			OwnerId:          "owner-1",
			Kind:             "LENT",
			CounterpartyName: "Alice",
			Amount:           "10.00",
			AccountId:        "acct-1",
		}

		req, err := mapping.ToDomainNewDebt(apiDebt)

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), req.Amount)
		assert.Equal(t, models.LENT, req.Kind)
	})

	t.Run("Bad amount fails", func(t *testing.T) {
		apiDebt := &api.NewDebt{Amount: "lots"}

		_, err := mapping.ToDomainNewDebt(apiDebt)

		assert.Error(t, err)
	})
}
