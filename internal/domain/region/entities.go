package region

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("region not found")

// Name is the business key; the unique index backs the on-conflict insert
// that keeps concurrent resolveOrCreate calls from duplicating a name.
type Region struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"region_id"`
	Name      string    `gorm:"column:name;size:100;not null;uniqueIndex:ux_regions_name" json:"region_name"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Region) TableName() string { return "regions" }
