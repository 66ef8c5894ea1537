// Package preflight provides readiness checks for the external tools, services,
// and filesystem paths the indexer depends on.
//
// The CLI "status" command renders every check; "classify" runs the
// directory checks before opening the registry so a misconfigured media root
// fails fast instead of marking tracks attempted. Each service check is gated
// by its config toggle.
package preflight
