// Package models defines the categories and sites exchanged with the
// navigation API together with the request schemas for every write endpoint.
//
// A Category is an ordered, named group of links. Its Order is a 1-based
// rank that defines the display sequence. A Site belongs to exactly one
// category through CategoryID; a site whose category does not exist is
// never displayed, but it is not an error either.
//
// Request types carry validate tags and are checked with Validate before
// anything is sent over the wire. Decoded responses are checked the same way.
package models
