// Package main hosts the knobgenre CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, opens the registry, and
// hands off to the scanner, the pass orchestrator, and the report package.
// Commands that mutate the registry hold the run lock for their duration.
package main
