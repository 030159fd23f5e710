// Package repository handles all interactions with the document store.
//
// It contains the MongoDB queries and methods to fetch, persist, or update
// data, abstracting driver logic away from the service layer.
package repository
