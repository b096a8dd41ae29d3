// Package thumbor builds thumbor image-server URLs and responsive candidate sets.
//
// Every function in this package is pure: it reads its arguments, returns a
// string or an error, and touches no shared state. The package never fetches
// images and never talks to the image server.
//
// # URL Grammar
//
// A processed-image URL has the form
//
//	<server>/<auth>/[trim[:src]]/[crop]/[fit-in]/<W>x<H>/[halign]/[valign]/[smart]/[filters:...]/<host><path>
//
// The segment order is fixed by the image server's path grammar. Reordering
// segments produces URLs the server will reject or misinterpret.
//
//   - auth: the signature from Options.AuthToken, or "unsafe" when unsigned
//   - crop: "<x1>x<y1>:<x2>x<y2>" in source pixel coordinates
//   - size: always present; 0 means "unconstrained" on that axis
//   - filters: "filters:" followed by name(args) pairs joined with ":"
//
// The query string and fragment of the source URL are dropped. Only its
// hostname and path are appended.
//
// # Responsive Sets
//
// BuildResponsiveSet renders one URL per breakpoint width with the height
// forced to 0, and joins them as "<url> <w>w" entries separated by commas.
// The fallback URL is the one built for the last breakpoint in the slice,
// which is not necessarily the largest.
//
// # Endpoint Resolution
//
// The image-server base URL is resolved before any URL is built:
// an explicit value wins over the ambient one held by a Scope. Scopes nest,
// and the innermost value wins.
//
// # Signing
//
// When a security key is configured, a Signer computes the HMAC-SHA1
// signature thumbor expects in place of "unsafe". Builder applies it per URL,
// because every breakpoint produces a different path.
//
// # Errors
//
// Failures are reported with the sentinel errors in errors.go, wrapped with
// context. Use errors.Is to test for them.
package thumbor
