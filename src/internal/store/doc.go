// Package store holds the client-side state of a quick-nav session.
//
// A Store owns the category and site lists fetched from the API. External
// code reads copies through accessors and changes state only through the
// intent methods (AddCategory, RenameCategory, MoveCategory and so on), each
// of which issues one request and refreshes the affected collections.
//
// Reordering is modeled as a two-phase transaction. The new sequence is
// applied locally and marked pending, the request is sent, and the
// transaction either commits (keeping the local sequence or re-fetching,
// depending on ConfirmMode) or reverts by re-fetching from the server.
package store
