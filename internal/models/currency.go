package models

// CurrencyKind distinguishes fiat currencies from crypto assets.
type CurrencyKind string

const (
	Fiat   CurrencyKind = "FIAT"
	Crypto CurrencyKind = "CRYPTO"
)

// Currency represents a registered currency row.
type Currency struct {
	CurrencyCode string       `db:"currency_code"` // Primary Key, stored uppercase
	Name         string       `db:"name"`
	Symbol       string       `db:"symbol"`
	Kind         CurrencyKind `db:"kind"`
	Decimals     int          `db:"decimals"`
	IsActive     bool         `db:"is_active"`
	AuditFields
}
