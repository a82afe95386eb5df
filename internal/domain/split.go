package domain

import (
	"github.com/shopspring/decimal"
)

// SplitEvenly делит total на n долей в копейках.
//
// Алгоритм работы:
//  1. Частное total/n усекается до двух знаков.
//  2. Все доли кроме последней равны частному.
//  3. Последняя доля получает остаток total - частное*(n-1).
//
// Сумма долей всегда в точности равна total. Например 100.00 на троих: 33.33, 33.33, 33.34.
func SplitEvenly(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, NewValidationError("users", "at least one participant is required")
	}
	if err := ValidateMoney("total_amount", total); err != nil {
		return nil, err
	}

	quotient := total.Div(decimal.NewFromInt(int64(n))).Truncate(MoneyDecimalPlaces)

	shares := make([]decimal.Decimal, n)
	allocated := decimal.Zero
	for i := range n - 1 {
		shares[i] = quotient
		allocated = allocated.Add(quotient)
	}
	shares[n-1] = total.Sub(allocated)

	return shares, nil
}

// CheckSplit сверяет сумму долей с суммой счёта. При расхождении возвращает *InvariantError.
func CheckSplit(total decimal.Decimal, shares []decimal.Decimal) error {
	sum := decimal.Sum(decimal.Zero, shares...)
	if !sum.Equal(total) {
		return NewInvariantError(
			"sum of shares %s does not match bill total %s",
			sum.StringFixed(MoneyDecimalPlaces),
			total.StringFixed(MoneyDecimalPlaces),
		)
	}
	return nil
}
