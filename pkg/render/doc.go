// Package render contains the presenters: read-only consumers of an
// inspection result tree that turn it into console output (text, tree) or
// a serialized string (JSON, YAML). Every presenter handles every node
// variant, terminal markers included.
package render
