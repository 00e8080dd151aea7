package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is reference data used to expand IATA codes on boarding-pass views.
type Airport struct {
	ID        uint
	Code      string
	Name      string
	City      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
