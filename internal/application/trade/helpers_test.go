package trade

import (
	"testing"

	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func valueMoney(t *testing.T, amount string) valueobject.Money {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	return valueobject.NewMoneySGD(d)
}
