// Package wrangling contains the core components of advanced-wrangling, a library for
// manipulating small in-memory tables. This root package defines the Frame, Schema, Row
// and ColumnType building blocks which every operation package works with, and is an
// excellent overview of the library's key concepts.
package wrangling
