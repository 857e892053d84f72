package model

import "time"

// Activity is one bookable activity offered by a provider. Activities are
// read-only from this service's perspective; creation and curation happen
// elsewhere. Search only ever considers active activities.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name.
//  Category      – category tag ("sports", "arts", ...).
//  Description   – provider-supplied description.
//  MinAge/MaxAge – age range the activity accepts.
//  PricePerMonth – monthly price.
//  Latitude      – venue latitude.
//  Longitude     – venue longitude.
//  IsActive      – whether the activity is currently offered.
//  CreatedAt     – creation timestamp.
type Activity struct {
	ID            int64     `json:"id"`              // activities.id
	Name          string    `json:"name"`            // activities.name
	Category      string    `json:"category"`        // activities.category
	Description   string    `json:"description"`     // activities.description
	MinAge        int       `json:"min_age"`         // activities.min_age
	MaxAge        int       `json:"max_age"`         // activities.max_age
	PricePerMonth float64   `json:"price_per_month"` // activities.price_per_month
	Latitude      float64   `json:"latitude"`        // activities.latitude
	Longitude     float64   `json:"longitude"`       // activities.longitude
	IsActive      bool      `json:"is_active"`       // activities.is_active
	CreatedAt     time.Time `json:"created_at"`      // activities.created_at
}

// Recommendation scores how well an activity matches one child. Rows are
// produced by a backend matching job; this service only reads them, ranked
// by match score, with the activity embedded.
type Recommendation struct {
	ID         int64     `json:"id"`                   // activity_recommendations.id
	ChildID    int64     `json:"child_id"`             // activity_recommendations.child_id
	ActivityID int64     `json:"activity_id"`          // activity_recommendations.activity_id
	MatchScore float64   `json:"match_score"`          // activity_recommendations.match_score
	Activity   *Activity `json:"activities,omitempty"` // embedded activities(*)
}
