// AngelaMos | 2026
// entity.go

package pest

import (
	"time"
)

type Pest struct {
	ID             string    `db:"id"`
	OwnerID        string    `db:"owner_id"`
	CommonName     string    `db:"common_name"`
	ScientificName string    `db:"scientific_name"`
	Description    string    `db:"description"`
	ImageURL       string    `db:"image_url"`
	CreatedAt      time.Time `db:"created_at"`
}
