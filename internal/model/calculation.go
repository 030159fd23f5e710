package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Calculation types accepted on CBM submissions.
const (
	CalculationTypeSingle   = "single"
	CalculationTypeMultiple = "multiple"
)

// Box is one package entry in a CBM calculation. The browser computes the
// arithmetic; values are stored exactly as submitted.
type Box struct {
	Length   *float64 `bson:"length,omitempty" json:"length,omitempty"`
	Width    *float64 `bson:"width,omitempty" json:"width,omitempty"`
	Height   *float64 `bson:"height,omitempty" json:"height,omitempty"`
	Weight   *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Quantity *float64 `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// CalculationResults carries the client-computed totals. All fields are
// optional and never recomputed server-side.
type CalculationResults struct {
	TotalCBM         *float64 `bson:"totalCBM,omitempty" json:"totalCBM,omitempty"`
	TotalWeight      *float64 `bson:"totalWeight,omitempty" json:"totalWeight,omitempty"`
	VolumetricWeight *float64 `bson:"volumetricWeight,omitempty" json:"volumetricWeight,omitempty"`
	BoxCount         *float64 `bson:"boxCount,omitempty" json:"boxCount,omitempty"`
}

// CBMCalculation records one use of the public CBM calculator, including
// request metadata for later traffic analysis.
type CBMCalculation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID       string             `bson:"sessionId" json:"sessionId"`
	CalculationType string             `bson:"calculationType" json:"calculationType"`

	SingleBox     *Box  `bson:"singleBox,omitempty" json:"singleBox,omitempty"`
	MultipleBoxes []Box `bson:"multipleBoxes,omitempty" json:"multipleBoxes,omitempty"`

	Results CalculationResults `bson:"results" json:"results"`

	IPAddress string    `bson:"ipAddress" json:"ipAddress"`
	UserAgent string    `bson:"userAgent" json:"userAgent"`
	Language  string    `bson:"language" json:"language"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PageFilter is plain pagination for listings without extra filters.
type PageFilter struct {
	Page  int
	Limit int
}
