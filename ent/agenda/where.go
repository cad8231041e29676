// Code generated by ent, DO NOT EDIT.

package agenda

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldID, id))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldDate, v))
}

// PartnerID applies equality check predicate on the "partner_id" field. It's identical to PartnerIDEQ.
func PartnerID(v uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldPartnerID, v))
}

// ResultNote applies equality check predicate on the "result_note" field. It's identical to ResultNoteEQ.
func ResultNote(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldResultNote, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldContainsFold(FieldName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldDate, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldStatus, vs...))
}

// PartnerIDEQ applies the EQ predicate on the "partner_id" field.
func PartnerIDEQ(v uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldPartnerID, v))
}

// PartnerIDNEQ applies the NEQ predicate on the "partner_id" field.
func PartnerIDNEQ(v uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldPartnerID, v))
}

// PartnerIDIn applies the In predicate on the "partner_id" field.
func PartnerIDIn(vs ...uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldPartnerID, vs...))
}

// PartnerIDNotIn applies the NotIn predicate on the "partner_id" field.
func PartnerIDNotIn(vs ...uint) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldPartnerID, vs...))
}

// PartnerIDIsNil applies the IsNil predicate on the "partner_id" field.
func PartnerIDIsNil() predicate.Agenda {
	return predicate.Agenda(sql.FieldIsNull(FieldPartnerID))
}

// PartnerIDNotNil applies the NotNil predicate on the "partner_id" field.
func PartnerIDNotNil() predicate.Agenda {
	return predicate.Agenda(sql.FieldNotNull(FieldPartnerID))
}

// ResultNoteEQ applies the EQ predicate on the "result_note" field.
func ResultNoteEQ(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEQ(FieldResultNote, v))
}

// ResultNoteNEQ applies the NEQ predicate on the "result_note" field.
func ResultNoteNEQ(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldNEQ(FieldResultNote, v))
}

// ResultNoteIn applies the In predicate on the "result_note" field.
func ResultNoteIn(vs ...string) predicate.Agenda {
	return predicate.Agenda(sql.FieldIn(FieldResultNote, vs...))
}

// ResultNoteNotIn applies the NotIn predicate on the "result_note" field.
func ResultNoteNotIn(vs ...string) predicate.Agenda {
	return predicate.Agenda(sql.FieldNotIn(FieldResultNote, vs...))
}

// ResultNoteGT applies the GT predicate on the "result_note" field.
func ResultNoteGT(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldGT(FieldResultNote, v))
}

// ResultNoteGTE applies the GTE predicate on the "result_note" field.
func ResultNoteGTE(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldGTE(FieldResultNote, v))
}

// ResultNoteLT applies the LT predicate on the "result_note" field.
func ResultNoteLT(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldLT(FieldResultNote, v))
}

// ResultNoteLTE applies the LTE predicate on the "result_note" field.
func ResultNoteLTE(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldLTE(FieldResultNote, v))
}

// ResultNoteContains applies the Contains predicate on the "result_note" field.
func ResultNoteContains(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldContains(FieldResultNote, v))
}

// ResultNoteHasPrefix applies the HasPrefix predicate on the "result_note" field.
func ResultNoteHasPrefix(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldHasPrefix(FieldResultNote, v))
}

// ResultNoteHasSuffix applies the HasSuffix predicate on the "result_note" field.
func ResultNoteHasSuffix(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldHasSuffix(FieldResultNote, v))
}

// ResultNoteIsNil applies the IsNil predicate on the "result_note" field.
func ResultNoteIsNil() predicate.Agenda {
	return predicate.Agenda(sql.FieldIsNull(FieldResultNote))
}

// ResultNoteNotNil applies the NotNil predicate on the "result_note" field.
func ResultNoteNotNil() predicate.Agenda {
	return predicate.Agenda(sql.FieldNotNull(FieldResultNote))
}

// ResultNoteEqualFold applies the EqualFold predicate on the "result_note" field.
func ResultNoteEqualFold(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldEqualFold(FieldResultNote, v))
}

// ResultNoteContainsFold applies the ContainsFold predicate on the "result_note" field.
func ResultNoteContainsFold(v string) predicate.Agenda {
	return predicate.Agenda(sql.FieldContainsFold(FieldResultNote, v))
}

// HasPartner applies the HasEdge predicate on the "partner" edge.
func HasPartner() predicate.Agenda {
	return predicate.Agenda(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PartnerTable, PartnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartnerWith applies the HasEdge predicate on the "partner" edge with a given conditions (other predicates).
func HasPartnerWith(preds ...predicate.Partner) predicate.Agenda {
	return predicate.Agenda(func(s *sql.Selector) {
		step := newPartnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agenda) predicate.Agenda {
	return predicate.Agenda(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agenda) predicate.Agenda {
	return predicate.Agenda(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agenda) predicate.Agenda {
	return predicate.Agenda(sql.NotPredicates(p))
}
