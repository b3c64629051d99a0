// Package secadvisor provides a Go client for the IBM Cloud Security Advisor
// findings and notifications REST APIs.
//
// # Features
//
//   - Findings service: notes, occurrences, providers and graph queries
//   - Notifications service: webhook channels and the payload signing key
//   - Strict model decoding that reports unknown keys and missing fields
//   - Go 1.23+ iterators over token- and offset-paged lists
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//
// # Quick Start
//
//	client, err := secadvisor.NewClient(
//	    secadvisor.WithRegion("us-south"),
//	    secadvisor.WithBearerToken(token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	note, _, err := client.Findings.CreateNote(ctx, accountID, "my-provider", &secadvisor.Note{
//	    ID:               "open-port",
//	    Kind:             secadvisor.NoteKindFinding,
//	    ShortDescription: "Open port",
//	    LongDescription:  "A port is reachable from the internet.",
//	    ReportedBy:       &secadvisor.Reporter{ID: "scanner", Title: "Port scanner"},
//	    Finding:          &secadvisor.FindingType{Severity: secadvisor.SeverityHigh},
//	})
//
// # Error Handling
//
// Missing path parameters and incomplete request bodies are rejected before
// any request is sent, with an *InvalidArgumentError that matches
// ErrInvalidArgument. Non-2xx responses are returned as typed errors that
// can be inspected with errors.As:
//
//	_, _, err := client.Findings.GetNote(ctx, accountID, providerID, "missing")
//	if err != nil {
//	    var notFound *secadvisor.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// A response body that does not match its model fails with a *DecodeError.
//
// # Pagination
//
// Use iterators for automatic pagination:
//
//	// Iterate over all notes of a provider
//	for note, err := range secadvisor.AllNotes(ctx, client.Findings, accountID, providerID, 0) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	occurrences, err := secadvisor.Collect(
//	    secadvisor.AllOccurrences(ctx, client.Findings, accountID, providerID, 100))
//
//	// Or use manual pagination
//	page, _, err := client.Findings.ListNotes(ctx, accountID, providerID, &secadvisor.PageOptions{
//	    PageSize:  50,
//	    PageToken: token,
//	})
package secadvisor
