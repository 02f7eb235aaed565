/*
Package flow models raw Studio flow definitions and extracts the graph
reachable from a trigger type.

A Definition mirrors the JSON shape returned by the Studio v2 API: a list
of widget states, each with typed transitions, plus the implicit trigger
widget whose transitions bind trigger events to entry states. Parse
validates incoming JSON against an embedded JSON Schema before decoding,
so malformed definitions fail at the load boundary rather than deep in
traversal.
*/
package flow
