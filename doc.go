/*
Package lattice implements the client-state orchestration layer of a
browser-based code editor: application bootstrap gating, sandbox ownership
gating and modal-flow coordination.

It is glue, not an engine. The surrounding application (sandbox editing, live
collaboration, bundling, API clients) stays behind small effect interfaces in
pkg/ports, and this layer sequences them with three composable pieces:

  - flow.WithLoadApp wraps any action so the one-time app bootstrap (auth
    check, settings load, survey, contributor fetch) runs exactly once before
    it.
  - flow.WithOwnedSandbox wraps an action so it only runs against an owned or
    sufficiently permissioned sandbox, forking or prompting the user
    otherwise.
  - pkg/modal turns modal definitions into typed open/close pairs where Open
    suspends the caller until Close resolves it.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/lattice-dev/lattice"
		"github.com/lattice-dev/lattice/pkg/flow"
	)

	func main() {
		// Wire your adapters into flow.Effects here.
		client := lattice.New(
			lattice.WithEffects(flow.Effects{}),
		)

		// Gate any entry action behind the one-time bootstrap.
		open := flow.WithLoadApp(func(ctx context.Context, app *flow.App, id string) error {
			log.Println("opening sandbox", id)
			return nil
		})

		if err := open(context.Background(), client.App(), "sandbox-42"); err != nil {
			log.Fatal(err)
		}
	}
*/
package lattice
