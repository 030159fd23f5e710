package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service types a quote can be requested for.
const (
	ServiceTypeAir  = "air"
	ServiceTypeSea  = "sea"
	ServiceTypeRoad = "road"
)

// ServiceTypes lists the accepted transport modes.
var ServiceTypes = []string{ServiceTypeAir, ServiceTypeSea, ServiceTypeRoad}

// Incoterms lists the accepted international delivery-term codes.
var Incoterms = []string{"EXW", "FCA", "FAS", "FOB", "CPT", "CFR", "CIF", "CIP", "DAP", "DPU", "DDP"}

// Quote lifecycle statuses. Any enumerated value may be set at any time;
// no transition order is enforced.
const (
	QuoteStatusPending    = "pending"
	QuoteStatusProcessing = "processing"
	QuoteStatusQuoted     = "quoted"
	QuoteStatusAccepted   = "accepted"
	QuoteStatusRejected   = "rejected"
)

// QuoteStatuses lists the accepted quote statuses.
var QuoteStatuses = []string{
	QuoteStatusPending,
	QuoteStatusProcessing,
	QuoteStatusQuoted,
	QuoteStatusAccepted,
	QuoteStatusRejected,
}

// AdditionalServices holds the optional service flags a customer can tick
// on the quote form. All default to false.
type AdditionalServices struct {
	Fragile   bool `bson:"fragile" json:"fragile"`
	Express   bool `bson:"express" json:"express"`
	Insurance bool `bson:"insurance" json:"insurance"`
	Packaging bool `bson:"packaging" json:"packaging"`
}

// Quote is a freight-quote request submitted from the public site.
//
// ReferenceNo is the human-readable identifier customers quote back in
// follow-up calls; a unique index on it is ensured at startup.
type Quote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReferenceNo string             `bson:"referenceNo" json:"referenceNo"`

	// Contact information.
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Company   string `bson:"company,omitempty" json:"company,omitempty"`

	// Shipment information.
	ServiceType   string `bson:"serviceType" json:"serviceType"`
	Incoterms     string `bson:"incoterms,omitempty" json:"incoterms,omitempty"`
	OriginCountry string `bson:"originCountry" json:"originCountry"`
	OriginCity    string `bson:"originCity" json:"originCity"`
	DestCountry   string `bson:"destCountry" json:"destCountry"`
	DestCity      string `bson:"destCity" json:"destCity"`

	// Cargo information.
	TotalWeight float64  `bson:"totalWeight" json:"totalWeight"`
	TotalCBM    *float64 `bson:"totalCBM,omitempty" json:"totalCBM,omitempty"`

	AdditionalServices AdditionalServices `bson:"additionalServices" json:"additionalServices"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`

	Status    string    `bson:"status" json:"status"`
	Language  string    `bson:"language" json:"language"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// QuoteFilter narrows quote listings. Search is matched case-insensitively
// as a substring across referenceNo, firstName, lastName, email and company.
type QuoteFilter struct {
	Page   int
	Limit  int
	Status string
	Search string
}
