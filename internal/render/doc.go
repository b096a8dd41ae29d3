// Package render turns thumbor options into responsive <img> markup.
//
// A Renderer combines endpoint resolution, candidate-set generation and
// attribute pass-through into a single call. The caller describes one image
// with Props and gets back either the URLs or the serialized element.
//
// # Modes
//
// Eager mode emits the computed src and srcset directly:
//
//	<img src="..." srcset="... 160w,... 360w" alt="..."/>
//
// Lazy mode parks the same values under data-* attributes and adds the
// "lazyload" marker class so that a client-side loader (lazysizes or any
// script watching that class) can promote them later:
//
//	<img data-sizes="auto" data-src="..." data-srcset="..." class="lazyload"/>
//
// data-sizes takes the caller's sizes attribute, or "auto" when none is set.
//
// # Pass-through Attributes
//
// Attributes are forwarded to the element in lexical order after the computed
// ones. Keys the renderer consumes are dropped case-insensitively first, so a
// caller cannot override src or srcset. Attribute values are HTML-escaped by
// golang.org/x/net/html; attribute names that could break out of the tag are
// rejected with ErrInvalidAttribute.
//
// # Endpoint Resolution
//
// Props.ServerURL wins over the Renderer's Scope. When neither provides a
// value every method fails with thumbor.ErrMissingEndpoint.
package render
