package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DocumentLines is a JSONB-backed list of document lines.
type DocumentLines []DocumentLine

// Value implements driver.Valuer.
func (l DocumentLines) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *DocumentLines) Scan(src any) error {
	return scanJSON(src, l)
}

// PaymentList is a JSONB-backed list of payments.
type PaymentList []Payment

// Value implements driver.Valuer.
func (p PaymentList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *PaymentList) Scan(src any) error {
	return scanJSON(src, p)
}

// Value implements driver.Valuer.
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *Address) Scan(src any) error {
	return scanJSON(src, a)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}
