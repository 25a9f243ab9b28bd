package models

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID         uuid.UUID `db:"id"`
	WeddingID  uuid.UUID `db:"wedding_id"`
	UploaderID uuid.UUID `db:"uploader_id"`
	Caption    string    `db:"caption"`
	Album      string    `db:"album"`
	FileName   string    `db:"file_name"`
	FileSize   int64     `db:"file_size"`
	FileURL    string    `db:"file_url"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
