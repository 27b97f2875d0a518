package contract

const (
	// kSale stores encoded SaleRecord blobs, one key per donation index.
	kSale byte = 0x01
)

const (
	// ContractConfigKey stores the serialized ContractConfig.
	ContractConfigKey = "cfg"
	// SalesCountKey holds an integer counter for donations (insertion order ids).
	SalesCountKey = "count:sales"
	// fundsKeyPrefix tracks accumulated drawn donations per asset.
	fundsKeyPrefix = "funds:"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// saleKey builds a storage key for a donation by its insertion index.
func saleKey(idx uint64) string {
	var buf [9]byte
	buf[0] = kSale
	packU64LEInline(idx, buf[1:])
	return string(buf[:])
}
