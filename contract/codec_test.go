package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRecordCodecRoundTrip(t *testing.T) {
	rec := &SaleRecord{
		Timestamp: 1700000000,
		From:      "hive:alice",
		To:        "hive:shop",
		Value:     CoffeePrice,
		Name:      "Alice | Bob",
		Message:   "free text with | pipes and ünicode ☕",
	}

	decoded, err := decodeSaleRecord(encodeSaleRecord(rec))
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func TestSaleRecordCodecRejectsTruncated(t *testing.T) {
	encoded := encodeSaleRecord(&SaleRecord{
		Timestamp: 1,
		From:      "hive:a",
		To:        "hive:b",
		Value:     CoffeePrice,
		Name:      "n",
		Message:   "m",
	})

	_, err := decodeSaleRecord(encoded[:len(encoded)/2])
	require.Error(t, err)
}

func TestAmountConversions(t *testing.T) {
	assert.Equal(t, CoffeePrice, FloatToAmount(1.0))
	assert.Equal(t, Amount(1234), FloatToAmount(1.234))
	assert.NotEqual(t, CoffeePrice, FloatToAmount(0.999))
	assert.InDelta(t, 1.0, AmountToFloat(CoffeePrice), 1e-9)
}
