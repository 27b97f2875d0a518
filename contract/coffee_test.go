package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buymeacoffee/sdk"
)

const (
	ownerAddr = sdk.Address("hive:shop_owner")
	donorAddr = sdk.Address("hive:generous_donor")
)

func coffeeIntent(limit string, token sdk.Asset) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}
}

// initializedHost spins up the mock host and runs contract_init as the owner.
func initializedHost(t *testing.T) *MockHost {
	t.Helper()
	h := UseMocks()
	h.Env.NextTx(ownerAddr)
	out := Init(nil)
	require.NotNil(t, out)
	require.Equal(t, "initialized", *out)
	return h
}

// requirePanicContains asserts the call panics with the given fragment in the
// panic value, covering both abort messages and revert symbols.
func requirePanicContains(t *testing.T, fragment string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic containing %q", fragment)
		require.Contains(t, fmt.Sprint(r), fragment)
	}()
	fn()
}

func TestInitOnlyOnce(t *testing.T) {
	h := initializedHost(t)

	owner := getContractOwner()
	require.NotNil(t, owner)
	assert.Equal(t, ownerAddr, *owner)

	h.Env.NextTx("hive:somebody_else")
	requirePanicContains(t, "already initialized", func() {
		Init(nil)
	})
	assert.Equal(t, ownerAddr, *getContractOwner())
}

func TestCallsRequireInit(t *testing.T) {
	UseMocks()
	payload := `{"name":"Alice","message":"hi"}`
	requirePanicContains(t, "not initialized", func() {
		BuyCoffee(&payload)
	})
	requirePanicContains(t, "not initialized", func() {
		ListSales(nil)
	})
}

func TestBuyCoffeeAppendsToOwner(t *testing.T) {
	h := initializedHost(t)

	h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
	payload := `{"name":"Alice","message":"keep up the great work"}`
	out := BuyCoffee(&payload)
	require.NotNil(t, out)
	assert.Equal(t, "0", *out)

	rec, err := loadSale(0)
	require.NoError(t, err)
	assert.Equal(t, donorAddr, rec.From)
	assert.Equal(t, ownerAddr, rec.To)
	assert.Equal(t, CoffeePrice, rec.Value)
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "keep up the great work", rec.Message)
	assert.NotZero(t, rec.Timestamp)

	require.Len(t, h.Funds.Draws, 1)
	assert.Equal(t, AmountToInt64(CoffeePrice), h.Funds.Draws[0].Amount)
	assert.Equal(t, DonationAsset, h.Funds.Draws[0].Asset)

	count := CountSales(nil)
	require.NotNil(t, count)
	assert.Equal(t, "1", *count)
}

func TestBuyCoffeeRejectsWrongPayment(t *testing.T) {
	cases := []struct {
		name    string
		intents []sdk.Intent
	}{
		{"no intent", nil},
		{"half a coffee", []sdk.Intent{coffeeIntent("0.500", DonationAsset)}},
		{"two coffees", []sdk.Intent{coffeeIntent("2.000", DonationAsset)}},
		{"wrong asset", []sdk.Intent{coffeeIntent("1.000", sdk.AssetHbd)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := initializedHost(t)
			h.Env.NextTx(donorAddr, tc.intents...)
			payload := `{"name":"Alice","message":"hi"}`
			requirePanicContains(t, "insufficient_payment", func() {
				BuyCoffee(&payload)
			})
			assert.Zero(t, salesCount(), "a rejected donation must not be recorded")
			assert.Empty(t, h.Funds.Draws, "a rejected donation must not move funds")
		})
	}
}

func TestBuyCoffeeRejectsEmptyText(t *testing.T) {
	for _, payload := range []string{
		`{"name":"","message":"hi"}`,
		`{"name":"Alice","message":""}`,
		`{"name":"  ","message":"hi"}`,
	} {
		h := initializedHost(t)
		h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
		p := payload
		requirePanicContains(t, "invalid_payload", func() {
			BuyCoffee(&p)
		})
		assert.Zero(t, salesCount())
	}
}

func TestSendCoffeeRecordsRecipient(t *testing.T) {
	h := initializedHost(t)

	h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
	payload := `{"to":"hive:barista","name":"Bob","message":"cheers"}`
	out := SendCoffee(&payload)
	require.NotNil(t, out)
	assert.Equal(t, "0", *out)

	rec, err := loadSale(0)
	require.NoError(t, err)
	assert.Equal(t, sdk.Address("hive:barista"), rec.To)
	assert.Equal(t, donorAddr, rec.From)
	assert.Equal(t, CoffeePrice, rec.Value)
}

func TestSendCoffeeRejectsInvalidRecipient(t *testing.T) {
	for _, to := range []string{"", "   ", "not-an-address"} {
		h := initializedHost(t)
		h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
		payload := fmt.Sprintf(`{"to":%q,"name":"Bob","message":"cheers"}`, to)
		requirePanicContains(t, "invalid_recipient", func() {
			SendCoffee(&payload)
		})
		assert.Zero(t, salesCount())
		assert.Empty(t, h.Funds.Draws)
	}
}

func TestLedgerIsAppendOnlyAndOrdered(t *testing.T) {
	h := initializedHost(t)

	donors := []sdk.Address{"hive:first", "hive:second", "hive:third"}
	for i, donor := range donors {
		h.Env.NextTx(donor, coffeeIntent("1.000", DonationAsset))
		payload := fmt.Sprintf(`{"name":"donor %d","message":"coffee %d"}`, i, i)
		out := BuyCoffee(&payload)
		require.NotNil(t, out)
		assert.Equal(t, UInt64ToString(uint64(i)), *out)
	}

	list := listSales()
	require.Len(t, list, len(donors))
	for i, donor := range donors {
		assert.Equal(t, donor, list[i].From)
		assert.Equal(t, ownerAddr, list[i].To)
	}

	// the first record is untouched by later donations
	first, err := loadSale(0)
	require.NoError(t, err)
	assert.Equal(t, donors[0], first.From)
	assert.Equal(t, "donor 0", first.Name)
}

func TestListSalesIsIdempotent(t *testing.T) {
	h := initializedHost(t)

	h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
	payload := `{"name":"Alice","message":"hi"}`
	BuyCoffee(&payload)

	keysBefore := h.State.Len()
	firstRead := ListSales(nil)
	secondRead := ListSales(nil)
	require.NotNil(t, firstRead)
	require.NotNil(t, secondRead)
	assert.Equal(t, *firstRead, *secondRead)
	assert.Equal(t, keysBefore, h.State.Len(), "reads must not mutate state")

	count := CountSales(nil)
	require.NotNil(t, count)
	assert.Equal(t, "1", *count)
}

func TestDonationFundsAreTracked(t *testing.T) {
	h := initializedHost(t)

	for i := 0; i < 2; i++ {
		h.Env.NextTx(donorAddr, coffeeIntent("1.000", DonationAsset))
		payload := `{"name":"Alice","message":"hi"}`
		BuyCoffee(&payload)
	}

	assert.Equal(t, 2*CoffeePrice, getContractFunds(DonationAsset))
	require.Len(t, h.Funds.Draws, 2)
}
