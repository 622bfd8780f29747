// Package locked holds the locked resume bullet table and loaders for
// alternate tables.
//
// Locked bullets are sentences that must reach the rendered resume verbatim.
// The content generator refers to them by key (for example {{freefly.1}})
// and the template expander swaps the key for the text after generation.
//
// Builtin returns the compiled-in table. FromFile and Parse build a registry
// from a YAML or JSON mapping of key to text, validating every entry:
//
//	# templates.yaml
//	acme.0: Shipped the billing service to production
//	acme.lead: Led a team of five engineers
package locked
