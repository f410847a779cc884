// Package ssm holds the request, response and nested shapes of the AWS Systems
// Manager API.
//
// Shapes are plain values. Members are pointers (or typed strings for
// enumerations) so that an unset member is distinguishable from a zero value and
// is omitted from the wire. Every shape has fluent SetX setters, a String debug
// rendering that skips unset members, and field-wise Equal and HashCode. Map members
// additionally have AddXEntry, which refuses duplicate keys, and ClearXEntries.
//
// Request shapes carry the documented service constraints through Validate.
// Setters never validate. Signing and transport are left to the SDK runtime.
package ssm
