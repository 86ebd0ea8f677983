package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase_WithFeeItem(t *testing.T) {
	items := []TransactionItem{{SKU: "SKU-1", Price: 100, Quantity: 100}}

	t.Run("AppendsFeeItem", func(t *testing.T) {
		b := Base{FeeItemSKU: "FEE"}

		got := b.WithFeeItem(items, 820)

		assert.Len(t, got, 2)
		assert.Equal(t, TransactionItem{SKU: "FEE", Price: 820, Quantity: 1}, got[1])
		assert.Equal(t, int64(10820), ItemsTotal(got))
		assert.Len(t, items, 1, "input must not be modified")
	})

	t.Run("NoSKU", func(t *testing.T) {
		got := Base{}.WithFeeItem(items, 820)
		assert.Equal(t, items, got)
	})

	t.Run("ZeroFee", func(t *testing.T) {
		got := Base{FeeItemSKU: "FEE"}.WithFeeItem(items, 0)
		assert.Equal(t, items, got)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		got := Base{}.WithFeeItem(items, 0)
		got[0].Price = 1
		assert.Equal(t, int64(100), items[0].Price)
	})
}

func TestItemsTotal(t *testing.T) {
	assert.Equal(t, int64(0), ItemsTotal(nil))
	assert.Equal(t, int64(10000), ItemsTotal([]TransactionItem{{SKU: "a", Price: 100, Quantity: 100}}))
	assert.Equal(t, int64(350), ItemsTotal([]TransactionItem{
		{SKU: "a", Price: 100, Quantity: 2},
		{SKU: "b", Price: 50, Quantity: 3},
	}))
}

func TestFee_Calculate(t *testing.T) {
	tests := []struct {
		name   string
		fee    Fee
		amount int64
		want   int64
	}{
		{"FlatOnly", Fee{Flat: 4250}, 10000, 4250},
		{"PercentOnly", Fee{Percent: 0.7}, 10000, 70},
		{"FlatAndPercent", Fee{Flat: 750, Percent: 0.7}, 10000, 820},
		{"RoundsUp", Fee{Percent: 0.7}, 1001, 8},
		{"ExactPercent", Fee{Percent: 1.1}, 100000, 1100},
		{"TwoDecimalPercent", Fee{Percent: 2.55}, 100000, 2550},
		{"ClampedToMin", Fee{Percent: 1, Min: 1000}, 10000, 1000},
		{"ClampedToMax", Fee{Percent: 10, Max: 500}, 10000, 500},
		{"Zero", Fee{}, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fee.Calculate(tt.amount))
		})
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Provider: "tripay", StatusCode: 400, Message: "Invalid signature"}
	assert.Equal(t, "tripay: Invalid signature (status 400)", err.Error())
}
