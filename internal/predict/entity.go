// AngelaMos | 2026
// entity.go

package predict

import (
	"time"
)

// Prediction is one persisted inference result. Raw holds the classifier's
// full output payload verbatim for audit.
type Prediction struct {
	ID         string    `db:"id"`
	OwnerID    string    `db:"owner_id"`
	ImagePath  string    `db:"image_path"`
	ClassName  string    `db:"class_name"`
	Confidence float64   `db:"confidence"`
	Raw        []byte    `db:"raw"`
	CreatedAt  time.Time `db:"created_at"`
}
