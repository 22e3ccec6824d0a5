// AngelaMos | 2026
// entity.go

package recommendation

import (
	"time"
)

type Recommendation struct {
	ID        string    `db:"id"`
	PestID    string    `db:"pest_id"`
	OwnerID   string    `db:"owner_id"`
	Type      string    `db:"type"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	TypeIPM        = "IPM"
	TypeChemical   = "Chemical"
	TypePrevention = "Prevention"
)
