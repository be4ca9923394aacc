// Package filestore implements the repository contracts on top of the
// flat-file JSON store. It is the fallback half of the dual store and a
// standalone backend for development.
package filestore

// Collection directory names under the data dir.
const (
	usersCollection      = "users"
	profilesCollection   = "business-profiles"
	postsCollection      = "posts"
	industriesCollection = "industries"
	templatesCollection  = "templates"
)
