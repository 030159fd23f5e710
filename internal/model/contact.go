package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form types a Contact document can originate from.
const (
	FormTypeContact    = "contact"
	FormTypeQuickQuote = "quick_quote"
)

// FormTypes enumerates the accepted formType values.
var FormTypes = []string{FormTypeContact, FormTypeQuickQuote}

// Contact statuses set from the admin panel. New submissions always start
// as "new".
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// Contact is a contact-form or quick-quote submission.
type Contact struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject  string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message  string             `bson:"message,omitempty" json:"message,omitempty"`
	FormType string             `bson:"formType" json:"formType"`
	Status   string             `bson:"status" json:"status"`
	Language string             `bson:"language" json:"language"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactFilter narrows contact listings by status and/or form type.
type ContactFilter struct {
	Page     int
	Limit    int
	Status   string
	FormType string
}
