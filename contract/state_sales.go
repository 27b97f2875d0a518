package contract

import (
	"fmt"

	"buymeacoffee/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Donation Ledger Persistence
////////////////////////////////////////////////////////////////////////////////

// salesCount returns the ledger length, which doubles as the next record index.
func salesCount() uint64 {
	return getCount(SalesCountKey)
}

// appendSale writes the record under the next index and bumps the counter.
// This is the only ledger mutation in the whole contract: records are never
// touched again once stored.
func appendSale(rec *SaleRecord) uint64 {
	idx := salesCount()
	getState().Set(saleKey(idx), encodeSaleRecord(rec))
	setCount(SalesCountKey, idx+1)
	return idx
}

// loadSale reads one record by index.
func loadSale(idx uint64) (*SaleRecord, error) {
	ptr := getState().Get(saleKey(idx))
	if ptr == nil {
		return nil, fmt.Errorf("sale %d not found", idx)
	}
	return decodeSaleRecord(*ptr)
}

// listSales loads the full ledger in insertion order. Unbounded by design, the
// dataset is expected to stay small; see coffee_count for a cheap length probe.
func listSales() SaleList {
	count := salesCount()
	out := make(SaleList, 0, count)
	for i := uint64(0); i < count; i++ {
		rec, err := loadSale(i)
		if err != nil {
			sdk.Abort(fmt.Sprintf("ledger corrupt at index %d: %v", i, err))
		}
		out = append(out, *rec)
	}
	return out
}
