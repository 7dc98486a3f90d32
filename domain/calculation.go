package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Calculation is the audit record of one completed calculation.
// Input and Result hold JSON documents.
type Calculation struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Tool      string    `json:"tool" gorm:"index"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// NewCalculation marshals input and result into a new record
func NewCalculation(tool string, input, result any) (Calculation, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return Calculation{}, err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return Calculation{}, err
	}

	return Calculation{
		ID:        uuid.New(),
		Tool:      tool,
		Input:     string(in),
		Result:    string(out),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// BeforeCreate generates a UUID for records created without one.
func (c *Calculation) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AfterFind returns the timestamp in UTC; sqlite reads it back as +0000.
func (c *Calculation) AfterFind(_ *gorm.DB) error {
	c.CreatedAt = c.CreatedAt.In(time.UTC)
	return nil
}
