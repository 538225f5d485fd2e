package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
)

// CourseConfigModel mirrors the 'course_configs' table. The deployment
// document is stored whole as JSONB; name and active are lifted out as
// columns for listing and filtering.
type CourseConfigModel struct {
	ID        uuid.UUID                                 `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID                                 `gorm:"type:uuid;not null;index"`
	Name      string                                    `gorm:"type:varchar(255);not null"`
	Document  datatypes.JSONType[entity.ConfigDocument] `gorm:"type:jsonb;not null"`
	Active    bool                                      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseConfigModel) TableName() string {
	return "course_configs"
}
