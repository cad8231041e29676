// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/advisor"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AdvisorQuery is the builder for querying Advisor entities.
type AdvisorQuery struct {
	config
	ctx        *QueryContext
	order      []advisor.OrderOption
	inters     []Interceptor
	predicates []predicate.Advisor
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AdvisorQuery builder.
func (aq *AdvisorQuery) Where(ps ...predicate.Advisor) *AdvisorQuery {
	aq.predicates = append(aq.predicates, ps...)
	return aq
}

// Limit the number of records to be returned by this query.
func (aq *AdvisorQuery) Limit(limit int) *AdvisorQuery {
	aq.ctx.Limit = &limit
	return aq
}

// Offset to start from.
func (aq *AdvisorQuery) Offset(offset int) *AdvisorQuery {
	aq.ctx.Offset = &offset
	return aq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aq *AdvisorQuery) Unique(unique bool) *AdvisorQuery {
	aq.ctx.Unique = &unique
	return aq
}

// Order specifies how the records should be ordered.
func (aq *AdvisorQuery) Order(o ...advisor.OrderOption) *AdvisorQuery {
	aq.order = append(aq.order, o...)
	return aq
}

// First returns the first Advisor entity from the query.
// Returns a *NotFoundError when no Advisor was found.
func (aq *AdvisorQuery) First(ctx context.Context) (*Advisor, error) {
	nodes, err := aq.Limit(1).All(setContextOp(ctx, aq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{advisor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aq *AdvisorQuery) FirstX(ctx context.Context) *Advisor {
	node, err := aq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Advisor ID from the query.
// Returns a *NotFoundError when no Advisor ID was found.
func (aq *AdvisorQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = aq.Limit(1).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{advisor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aq *AdvisorQuery) FirstIDX(ctx context.Context) uint {
	id, err := aq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Advisor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Advisor entity is found.
// Returns a *NotFoundError when no Advisor entities are found.
func (aq *AdvisorQuery) Only(ctx context.Context) (*Advisor, error) {
	nodes, err := aq.Limit(2).All(setContextOp(ctx, aq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{advisor.Label}
	default:
		return nil, &NotSingularError{advisor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aq *AdvisorQuery) OnlyX(ctx context.Context) *Advisor {
	node, err := aq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Advisor ID in the query.
// Returns a *NotSingularError when more than one Advisor ID is found.
// Returns a *NotFoundError when no entities are found.
func (aq *AdvisorQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = aq.Limit(2).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{advisor.Label}
	default:
		err = &NotSingularError{advisor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aq *AdvisorQuery) OnlyIDX(ctx context.Context) uint {
	id, err := aq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Advisors.
func (aq *AdvisorQuery) All(ctx context.Context) ([]*Advisor, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryAll)
	if err := aq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Advisor, *AdvisorQuery]()
	return withInterceptors[[]*Advisor](ctx, aq, qr, aq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aq *AdvisorQuery) AllX(ctx context.Context) []*Advisor {
	nodes, err := aq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Advisor IDs.
func (aq *AdvisorQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if aq.ctx.Unique == nil && aq.path != nil {
		aq.Unique(true)
	}
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryIDs)
	if err = aq.Select(advisor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aq *AdvisorQuery) IDsX(ctx context.Context) []uint {
	ids, err := aq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aq *AdvisorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryCount)
	if err := aq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aq, querierCount[*AdvisorQuery](), aq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aq *AdvisorQuery) CountX(ctx context.Context) int {
	count, err := aq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aq *AdvisorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryExist)
	switch _, err := aq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aq *AdvisorQuery) ExistX(ctx context.Context) bool {
	exist, err := aq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AdvisorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aq *AdvisorQuery) Clone() *AdvisorQuery {
	if aq == nil {
		return nil
	}
	return &AdvisorQuery{
		config:     aq.config,
		ctx:        aq.ctx.Clone(),
		order:      append([]advisor.OrderOption{}, aq.order...),
		inters:     append([]Interceptor{}, aq.inters...),
		predicates: append([]predicate.Advisor{}, aq.predicates...),
		// clone intermediate query.
		sql:  aq.sql.Clone(),
		path: aq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		IsActive bool `json:"is_active,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Advisor.Query().
//		GroupBy(advisor.FieldIsActive).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aq *AdvisorQuery) GroupBy(field string, fields ...string) *AdvisorGroupBy {
	aq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AdvisorGroupBy{build: aq}
	grbuild.flds = &aq.ctx.Fields
	grbuild.label = advisor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		IsActive bool `json:"is_active,omitempty"`
//	}
//
//	client.Advisor.Query().
//		Select(advisor.FieldIsActive).
//		Scan(ctx, &v)
func (aq *AdvisorQuery) Select(fields ...string) *AdvisorSelect {
	aq.ctx.Fields = append(aq.ctx.Fields, fields...)
	sbuild := &AdvisorSelect{AdvisorQuery: aq}
	sbuild.label = advisor.Label
	sbuild.flds, sbuild.scan = &aq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AdvisorSelect configured with the given aggregations.
func (aq *AdvisorQuery) Aggregate(fns ...AggregateFunc) *AdvisorSelect {
	return aq.Select().Aggregate(fns...)
}

func (aq *AdvisorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aq); err != nil {
				return err
			}
		}
	}
	for _, f := range aq.ctx.Fields {
		if !advisor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aq.path != nil {
		prev, err := aq.path(ctx)
		if err != nil {
			return err
		}
		aq.sql = prev
	}
	return nil
}

func (aq *AdvisorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Advisor, error) {
	var (
		nodes = []*Advisor{}
		_spec = aq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Advisor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Advisor{config: aq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (aq *AdvisorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aq.querySpec()
	_spec.Node.Columns = aq.ctx.Fields
	if len(aq.ctx.Fields) > 0 {
		_spec.Unique = aq.ctx.Unique != nil && *aq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aq.driver, _spec)
}

func (aq *AdvisorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(advisor.Table, advisor.Columns, sqlgraph.NewFieldSpec(advisor.FieldID, field.TypeUint))
	_spec.From = aq.sql
	if unique := aq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aq.path != nil {
		_spec.Unique = true
	}
	if fields := aq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advisor.FieldID)
		for i := range fields {
			if fields[i] != advisor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := aq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aq *AdvisorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aq.driver.Dialect())
	t1 := builder.Table(advisor.Table)
	columns := aq.ctx.Fields
	if len(columns) == 0 {
		columns = advisor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aq.sql != nil {
		selector = aq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aq.ctx.Unique != nil && *aq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aq.predicates {
		p(selector)
	}
	for _, p := range aq.order {
		p(selector)
	}
	if offset := aq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AdvisorGroupBy is the group-by builder for Advisor entities.
type AdvisorGroupBy struct {
	selector
	build *AdvisorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (agb *AdvisorGroupBy) Aggregate(fns ...AggregateFunc) *AdvisorGroupBy {
	agb.fns = append(agb.fns, fns...)
	return agb
}

// Scan applies the selector query and scans the result into the given value.
func (agb *AdvisorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, agb.build.ctx, ent.OpQueryGroupBy)
	if err := agb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdvisorQuery, *AdvisorGroupBy](ctx, agb.build, agb, agb.build.inters, v)
}

func (agb *AdvisorGroupBy) sqlScan(ctx context.Context, root *AdvisorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(agb.fns))
	for _, fn := range agb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*agb.flds)+len(agb.fns))
		for _, f := range *agb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*agb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := agb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AdvisorSelect is the builder for selecting fields of Advisor entities.
type AdvisorSelect struct {
	*AdvisorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (as *AdvisorSelect) Aggregate(fns ...AggregateFunc) *AdvisorSelect {
	as.fns = append(as.fns, fns...)
	return as
}

// Scan applies the selector query and scans the result into the given value.
func (as *AdvisorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, as.ctx, ent.OpQuerySelect)
	if err := as.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdvisorQuery, *AdvisorSelect](ctx, as.AdvisorQuery, as, as.inters, v)
}

func (as *AdvisorSelect) sqlScan(ctx context.Context, root *AdvisorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(as.fns))
	for _, fn := range as.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*as.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := as.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
