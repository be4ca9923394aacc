package entity

import (
	"time"
)

// Niche is one specialization inside an industry.
type Niche struct {
	Name string `bson:"name" json:"name"`
}

// Industry is one entry of the fixed business taxonomy. Seeded once,
// read-only from the client's perspective.
type Industry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Niches    []Niche   `bson:"niches" json:"niches"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
