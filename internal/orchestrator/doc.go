// Package orchestrator coordinates the client-side session: it owns the
// process-wide [models.ClientState], translates named user intents into calls
// on the conversation session, document store and export service, and turns
// their outcomes into user-visible notices.
//
// The orchestrator reads component state only through the components' public
// methods. All methods are safe for concurrent use.
package orchestrator
