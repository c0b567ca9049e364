// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// DocumentScanQuery is the builder for querying DocumentScan entities.
type DocumentScanQuery struct {
	config
	ctx              *QueryContext
	order            []documentscan.OrderOption
	inters           []Interceptor
	predicates       []predicate.DocumentScan
	withExtracted    *ExtractedDataQuery
	withGeneratedCvs *GeneratedCVQuery
	withJobs         *ProcessingJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentScanQuery builder.
func (_q *DocumentScanQuery) Where(ps ...predicate.DocumentScan) *DocumentScanQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentScanQuery) Limit(limit int) *DocumentScanQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentScanQuery) Offset(offset int) *DocumentScanQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentScanQuery) Unique(unique bool) *DocumentScanQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentScanQuery) Order(o ...documentscan.OrderOption) *DocumentScanQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExtracted chains the current query on the "extracted" edge.
func (_q *DocumentScanQuery) QueryExtracted() *ExtractedDataQuery {
	query := (&ExtractedDataClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, selector),
			sqlgraph.To(extracteddata.Table, extracteddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, documentscan.ExtractedTable, documentscan.ExtractedColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGeneratedCvs chains the current query on the "generated_cvs" edge.
func (_q *DocumentScanQuery) QueryGeneratedCvs() *GeneratedCVQuery {
	query := (&GeneratedCVClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, selector),
			sqlgraph.To(generatedcv.Table, generatedcv.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentscan.GeneratedCvsTable, documentscan.GeneratedCvsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (_q *DocumentScanQuery) QueryJobs() *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, selector),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentscan.JobsTable, documentscan.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentScan entity from the query.
// Returns a *NotFoundError when no DocumentScan was found.
func (_q *DocumentScanQuery) First(ctx context.Context) (*DocumentScan, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentscan.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentScanQuery) FirstX(ctx context.Context) *DocumentScan {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentScan ID from the query.
// Returns a *NotFoundError when no DocumentScan ID was found.
func (_q *DocumentScanQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentscan.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentScanQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentScan entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentScan entity is found.
// Returns a *NotFoundError when no DocumentScan entities are found.
func (_q *DocumentScanQuery) Only(ctx context.Context) (*DocumentScan, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentscan.Label}
	default:
		return nil, &NotSingularError{documentscan.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentScanQuery) OnlyX(ctx context.Context) *DocumentScan {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentScan ID in the query.
// Returns a *NotSingularError when more than one DocumentScan ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentScanQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentscan.Label}
	default:
		err = &NotSingularError{documentscan.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentScanQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentScans.
func (_q *DocumentScanQuery) All(ctx context.Context) ([]*DocumentScan, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentScan, *DocumentScanQuery]()
	return withInterceptors[[]*DocumentScan](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentScanQuery) AllX(ctx context.Context) []*DocumentScan {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentScan IDs.
func (_q *DocumentScanQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentscan.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentScanQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentScanQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentScanQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentScanQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentScanQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DocumentScanQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentScanQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentScanQuery) Clone() *DocumentScanQuery {
	if _q == nil {
		return nil
	}
	return &DocumentScanQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]documentscan.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.DocumentScan{}, _q.predicates...),
		withExtracted:    _q.withExtracted.Clone(),
		withGeneratedCvs: _q.withGeneratedCvs.Clone(),
		withJobs:         _q.withJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExtracted tells the query-builder to eager-load the nodes that are connected to
// the "extracted" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentScanQuery) WithExtracted(opts ...func(*ExtractedDataQuery)) *DocumentScanQuery {
	query := (&ExtractedDataClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtracted = query
	return _q
}

// WithGeneratedCvs tells the query-builder to eager-load the nodes that are connected to
// the "generated_cvs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentScanQuery) WithGeneratedCvs(opts ...func(*GeneratedCVQuery)) *DocumentScanQuery {
	query := (&GeneratedCVClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGeneratedCvs = query
	return _q
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentScanQuery) WithJobs(opts ...func(*ProcessingJobQuery)) *DocumentScanQuery {
	query := (&ProcessingJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DocumentScan.Query().
//		GroupBy(documentscan.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DocumentScanQuery) GroupBy(field string, fields ...string) *DocumentScanGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentScanGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentscan.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//	}
//
//	client.DocumentScan.Query().
//		Select(documentscan.FieldUserID).
//		Scan(ctx, &v)
func (_q *DocumentScanQuery) Select(fields ...string) *DocumentScanSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentScanSelect{DocumentScanQuery: _q}
	sbuild.label = documentscan.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentScanSelect configured with the given aggregations.
func (_q *DocumentScanQuery) Aggregate(fns ...AggregateFunc) *DocumentScanSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentScanQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !documentscan.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DocumentScanQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentScan, error) {
	var (
		nodes       = []*DocumentScan{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withExtracted != nil,
			_q.withGeneratedCvs != nil,
			_q.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentScan).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentScan{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withExtracted; query != nil {
		if err := _q.loadExtracted(ctx, query, nodes, nil,
			func(n *DocumentScan, e *ExtractedData) { n.Edges.Extracted = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGeneratedCvs; query != nil {
		if err := _q.loadGeneratedCvs(ctx, query, nodes,
			func(n *DocumentScan) { n.Edges.GeneratedCvs = []*GeneratedCV{} },
			func(n *DocumentScan, e *GeneratedCV) { n.Edges.GeneratedCvs = append(n.Edges.GeneratedCvs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withJobs; query != nil {
		if err := _q.loadJobs(ctx, query, nodes,
			func(n *DocumentScan) { n.Edges.Jobs = []*ProcessingJob{} },
			func(n *DocumentScan, e *ProcessingJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentScanQuery) loadExtracted(ctx context.Context, query *ExtractedDataQuery, nodes []*DocumentScan, init func(*DocumentScan), assign func(*DocumentScan, *ExtractedData)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentScan)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extracteddata.FieldDocumentID)
	}
	query.Where(predicate.ExtractedData(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentscan.ExtractedColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentScanQuery) loadGeneratedCvs(ctx context.Context, query *GeneratedCVQuery, nodes []*DocumentScan, init func(*DocumentScan), assign func(*DocumentScan, *GeneratedCV)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentScan)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(generatedcv.FieldDocumentID)
	}
	query.Where(predicate.GeneratedCV(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentscan.GeneratedCvsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentScanQuery) loadJobs(ctx context.Context, query *ProcessingJobQuery, nodes []*DocumentScan, init func(*DocumentScan), assign func(*DocumentScan, *ProcessingJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentScan)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processingjob.FieldDocumentID)
	}
	query.Where(predicate.ProcessingJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentscan.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "document_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DocumentScanQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentScanQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentscan.Table, documentscan.Columns, sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentscan.FieldID)
		for i := range fields {
			if fields[i] != documentscan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DocumentScanQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentscan.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentscan.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DocumentScanGroupBy is the group-by builder for DocumentScan entities.
type DocumentScanGroupBy struct {
	selector
	build *DocumentScanQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentScanGroupBy) Aggregate(fns ...AggregateFunc) *DocumentScanGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentScanGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentScanQuery, *DocumentScanGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentScanGroupBy) sqlScan(ctx context.Context, root *DocumentScanQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DocumentScanSelect is the builder for selecting fields of DocumentScan entities.
type DocumentScanSelect struct {
	*DocumentScanQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentScanSelect) Aggregate(fns ...AggregateFunc) *DocumentScanSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentScanSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentScanQuery, *DocumentScanSelect](ctx, _s.DocumentScanQuery, _s, _s.inters, v)
}

func (_s *DocumentScanSelect) sqlScan(ctx context.Context, root *DocumentScanQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
