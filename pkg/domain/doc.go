/*
Package domain contains the core graph model for Studio flows.

A Graph holds the states reachable from a flow's entry point together with
the transitions between them, in discovery order. It is a pure value: the
extractor builds it, the overlay copies it, and the renderer reads it. No
package here touches the network or the filesystem.
*/
package domain
