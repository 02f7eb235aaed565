/*
Package studiomap turns Twilio Studio flow definitions into Mermaid
flowcharts and keeps them embedded in Markdown documents.

# Concept

A Studio flow is a directed graph of widget states with labeled
transitions. Studiomap extracts the subgraph reachable from one trigger
type (incoming call, incoming message, REST invocation, or sub-flow
invocation), optionally renames states through an operator-maintained
override file, renders the result as a fenced Mermaid block, and splices
that block into an existing document between marker comments:

	<!-- my-flow-start -->
	```mermaid
	flowchart TD
	    ...
	```
	<!-- my-flow-end -->

Re-running the tool against an unchanged flow leaves the document
byte-identical, so it is safe to wire into CI.

# Usage

	def, err := flow.Parse(rawJSON)
	if err != nil {
		log.Fatal(err)
	}

	gen := studiomap.New()
	diagram, err := gen.Generate(def, flow.TriggerIncomingCall, map[string]string{
		"gather_choice": "Main menu",
	})
	if err != nil {
		log.Fatal(err)
	}

	updated, err := studiomap.UpdateDocument(doc, "my-flow", diagram)

Fetching definitions from the Studio API, reading override files and
writing documents back to disk are handled by the cmd/studiomap CLI and
the adapters under internal/.
*/
package studiomap
