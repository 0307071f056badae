package projects

import (
	"time"
)

// RestorationType of a blue-carbon project.
type RestorationType string

const (
	Afforestation RestorationType = "Afforestation"
	Reforestation RestorationType = "Reforestation"
	Agroforestry  RestorationType = "Agroforestry"
)

// Status is the verification lifecycle flag controlling marketplace
// visibility. Submissions always start pending; only the (out-of-scope)
// verification process moves a project past that.
type Status string

const (
	StatusPendingVerification Status = "Pending Verification"
	StatusVerified            Status = "Verified"
	StatusRejected            Status = "Rejected"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// NGORef identifies the implementing partner on a project. Cross-references
// are by id; profiles are resolved via lookup, never held in memory.
type NGORef struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logoUrl" json:"logoUrl"`
}

// Project represents a restoration project
type Project struct {
	ID                     string          `bson:"id" json:"id"`
	Name                   string          `bson:"name" json:"name"`
	Location               Coordinate      `bson:"location" json:"location"`
	LocationName           string          `bson:"locationName" json:"locationName"`
	RestorationType        RestorationType `bson:"restorationType" json:"restorationType"`
	PlantationDate         time.Time       `bson:"plantationDate" json:"plantationDate"`
	Description            string          `bson:"description" json:"description"`
	ImageURL               string          `bson:"imageUrl" json:"imageUrl"`
	ImageHint              string          `bson:"imageHint" json:"imageHint"`
	NDVI                   float64         `bson:"ndvi" json:"ndvi"`
	EstimatedCarbonCapture float64         `bson:"estimatedCarbonCapture" json:"estimatedCarbonCapture"` // tonnes/ha/year
	CreditsAvailable       int             `bson:"creditsAvailable" json:"creditsAvailable"`
	NGO                    NGORef          `bson:"ngo" json:"ngo"`
	Status                 Status          `bson:"status" json:"status"`
}
