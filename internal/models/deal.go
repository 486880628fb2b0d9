package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Deal is a closed business deal embedded in a member's deal list.
// DealID is a server-generated uuid assigned when the submission is created.
type Deal struct {
	DealID      string    `json:"deal_id"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
}

// DealList stores a member's deals in a single jsonb column.
type DealList []Deal

// Value implements the driver.Valuer interface
func (d DealList) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *DealList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, d)
}

// Find returns the deal with the given id, or nil.
func (d DealList) Find(dealID string) *Deal {
	for i := range d {
		if d[i].DealID == dealID {
			return &d[i]
		}
	}
	return nil
}
