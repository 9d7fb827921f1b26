// Package studio defines the client record shape consumed by the dashboard
// and the sources that supply it.
//
// # Overview
//
// The analytics backend owns aggregation and persistence. This package only
// mirrors its new-client payload and offers two thin adapters:
//
//   - Client: GET /api/clients on the analytics HTTP API
//   - FileSource: a local YAML or JSON document, handy for demos and offline use
//
// Both satisfy Source, which is all the poller depends on.
//
// # Optional Fields
//
// Every ClientRecord field is optional. Zero values mean "absent" and the UI
// substitutes a field-specific default (0, "Not provided", "Unknown", ...).
// No validation happens here.
//
// # Accepted File Shapes
//
//	# bare list
//	- firstName: Asha
//	  conversionStatus: Converted
//
//	# wrapped, same as the API
//	items:
//	  - firstName: Asha
//
// JSON documents are parsed by the same YAML decoder.
//
// # Errors
//
// Errors are wrapped with fmt.Errorf and describe what failed:
//
//   - "execute request: dial tcp: connection refused"
//   - "api /api/clients returned status 500"
//   - "read data file: open clients.yaml: no such file or directory"
package studio
