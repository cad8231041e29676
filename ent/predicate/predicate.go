// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Advisor is the predicate function for advisor builders.
type Advisor func(*sql.Selector)

// Agenda is the predicate function for agenda builders.
type Agenda func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Partner is the predicate function for partner builders.
type Partner func(*sql.Selector)

// Staff is the predicate function for staff builders.
type Staff func(*sql.Selector)
