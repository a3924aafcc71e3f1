// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query builds storage-independent document queries from the
// caller identity and request parameters.
//
// A query carries a typed [Filter] expression that repositories compile
// into the native query language of their store.
package query

// Field names a filterable document attribute.
type Field string

const (
	FieldID          Field = "id"
	FieldOwnerID     Field = "owner_id"
	FieldOwnerRoleID Field = "owner_role_id"
	FieldAccess      Field = "access"
	FieldTitle       Field = "title"
	FieldContent     Field = "content"
	FieldCreatedAt   Field = "created_at"
)

// Filter is a predicate over documents. The set of implementations is
// closed: [All], [Eq], [In], [ILike], [And] and [Or].
type Filter interface {
	isFilter()
}

// All matches every row.
type All struct{}

// Eq matches rows whose Field equals Value.
type Eq struct {
	Field Field
	Value any
}

// In matches rows whose Field equals any of Values.
type In struct {
	Field  Field
	Values []any
}

// ILike matches rows whose Field matches Pattern case-insensitively,
// with SQL LIKE wildcards.
type ILike struct {
	Field   Field
	Pattern string
}

// And matches rows satisfying every operand. An empty And matches all rows.
type And []Filter

// Or matches rows satisfying at least one operand. An empty Or matches
// nothing.
type Or []Filter

func (All) isFilter()   {}
func (Eq) isFilter()    {}
func (In) isFilter()    {}
func (ILike) isFilter() {}
func (And) isFilter()   {}
func (Or) isFilter()    {}

// Order is a single ordering term.
type Order struct {
	Field Field
	Desc  bool
}

// NewestFirst orders documents by creation time, most recent first, with
// the id as a tiebreaker so pages are stable.
var NewestFirst = []Order{
	{Field: FieldCreatedAt, Desc: true},
	{Field: FieldID, Desc: true},
}
