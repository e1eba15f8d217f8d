package domain

// Asset identifies a fungible asset. NativeAsset is the host currency,
// paid by attaching value to a purchase instead of a pre-approved pull.
type Asset string

const NativeAsset Asset = "native"

// IsNative reports whether a is the native currency.
func (a Asset) IsNative() bool {
	return a == NativeAsset
}

// Account identifies a holder of assets.
type Account string
