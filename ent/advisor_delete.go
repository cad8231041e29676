// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/advisor"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AdvisorDelete is the builder for deleting a Advisor entity.
type AdvisorDelete struct {
	config
	hooks    []Hook
	mutation *AdvisorMutation
}

// Where appends a list predicates to the AdvisorDelete builder.
func (ad *AdvisorDelete) Where(ps ...predicate.Advisor) *AdvisorDelete {
	ad.mutation.Where(ps...)
	return ad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ad *AdvisorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ad.sqlExec, ad.mutation, ad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ad *AdvisorDelete) ExecX(ctx context.Context) int {
	n, err := ad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ad *AdvisorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(advisor.Table, sqlgraph.NewFieldSpec(advisor.FieldID, field.TypeUint))
	if ps := ad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ad.mutation.done = true
	return affected, err
}

// AdvisorDeleteOne is the builder for deleting a single Advisor entity.
type AdvisorDeleteOne struct {
	ad *AdvisorDelete
}

// Where appends a list predicates to the AdvisorDelete builder.
func (ado *AdvisorDeleteOne) Where(ps ...predicate.Advisor) *AdvisorDeleteOne {
	ado.ad.mutation.Where(ps...)
	return ado
}

// Exec executes the deletion query.
func (ado *AdvisorDeleteOne) Exec(ctx context.Context) error {
	n, err := ado.ad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{advisor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ado *AdvisorDeleteOne) ExecX(ctx context.Context) {
	if err := ado.Exec(ctx); err != nil {
		panic(err)
	}
}
