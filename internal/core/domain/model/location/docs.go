// Package location models the geographic/administrative hierarchy used to
// scope vendors, orders, and delivery agents: a forest of nodes typed
// country → state → city → district → zone, linked by parent references.
//
// Locations carry admin-assigned slug identifiers (for example "us-ca-sf")
// rather than generated UUIDs, so the hierarchy stays readable in URLs and
// fixtures. The parent-link graph is required to be acyclic; BuildPath walks
// it with a visited set and fails fast on corruption instead of looping.
package location
