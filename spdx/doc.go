// Package spdx implements the SPDX license expression sublanguage:
// tokenizing and parsing of boolean license expressions such as
// "(MIT OR Apache-2.0) AND ISC", and flattening of the resulting
// expression tree into ordered, queryable license entries.
package spdx
