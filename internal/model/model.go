// Package model defines the MongoDB documents stored by the service
// and the enumerations their fields draw from.
//
// Field names mirror the collections consumed by the admin panel, so
// bson and json tags both use camelCase.
package model
