// Package syntax provides string types for the atproto identifiers which show up in records and API calls:
// handles, DIDs, AT-URIs, NSIDs, record keys, CIDs and datetimes.
//
// These are syntax checks only. Resolving a handle or fetching a record is done elsewhere.
package syntax
