package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConfigID identifies a course configuration. It validates its string form
// at construction; handlers parse raw path parameters through ParseConfigID
// and surface the conversion error as a bad request.
type ConfigID uuid.UUID

// ParseConfigID converts the string form of a config identifier into a
// ConfigID, failing with ErrInvalidConfigID when the form is not valid.
func ParseConfigID(raw string) (ConfigID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return ConfigID{}, fmt.Errorf("%w: %q", ErrInvalidConfigID, raw)
	}

	return ConfigID(id), nil
}

// UUID returns the underlying uuid value.
func (id ConfigID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id ConfigID) String() string {
	return uuid.UUID(id).String()
}

// CourseConfig is a per-course deployment package owned by a single user.
// The Document field holds the deployable configuration as the course
// tooling consumes it; the surrounding columns exist for querying.
type CourseConfig struct {
	ID        ConfigID       // Store-assigned identifier.
	OwnerID   uuid.UUID      // The user this configuration belongs to.
	Name      string         // Course name, duplicated from the document for listing.
	Document  ConfigDocument // The deployable configuration document.
	Active    bool           // Inactive configs are retained but excluded from deployment.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigDocument is the deployment document persisted as a single JSON value.
type ConfigDocument struct {
	CourseName     string         `json:"course_name"`
	CollectionName string         `json:"collection_name"`
	Metadata       CourseMetadata `json:"metadata"`
	Documents      []DocumentRef  `json:"documents"`
	Plugin         PluginConfig   `json:"plugin"`
	Storage        StorageConfig  `json:"storage"`
}

// CourseMetadata describes the course a configuration deploys.
type CourseMetadata struct {
	Term         string    `json:"term"`
	Number       string    `json:"number"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// DocumentRef points at an uploaded reference document.
type DocumentRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PluginConfig selects the course platform integration. APIKey and ContextID
// are empty for the CommandLine plugin, which needs no platform credentials.
type PluginConfig struct {
	Type      string `json:"type"`
	APIKey    string `json:"api_key,omitempty"`
	ContextID string `json:"context_id,omitempty"`
}

// StorageConfig tells the deployed course tooling where to cache content.
type StorageConfig struct {
	Type     string `json:"type"`
	Location string `json:"location"`
}
