package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"time"

	"snapgram/internal/domain/gateway"

	"github.com/pkg/errors"
)

type documentRecord struct {
	id        string
	seq       uint64
	createdAt time.Time
	updatedAt time.Time
	attrs     map[string]any
}

func (r *documentRecord) document(collection gateway.Collection) (*gateway.Document, error) {
	data, err := json.Marshal(r.attrs)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &gateway.Document{
		ID:         r.id,
		Collection: collection,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
		Data:       data,
	}, nil
}

// value resolves an attribute, including the metadata attributes.
func (r *documentRecord) value(attribute string) any {
	switch attribute {
	case gateway.AttrID:
		return r.id
	case gateway.AttrCreatedAt:
		return r.createdAt
	case gateway.AttrUpdatedAt:
		return r.updatedAt
	default:
		return r.attrs[attribute]
	}
}

// toAttributes normalises a payload through JSON so stored values have the
// same shapes the remote service would return.
func toAttributes(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, badRequest("document_invalid_structure", err.Error())
	}

	attrs := make(map[string]any)
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, badRequest("document_invalid_structure", "document data must be an object")
	}

	return attrs, nil
}

// CreateDocument stores a new document. Ids are unique per collection.
func (b *Backend) CreateDocument(_ context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpCreateDocument); err != nil {
		return nil, err
	}

	attrs, err := toAttributes(data)
	if err != nil {
		return nil, err
	}

	docs := b.collectionLocked(collection)
	if _, ok := docs[id]; ok {
		return nil, conflict("document_already_exists", "Document with the requested ID already exists.")
	}

	now := b.nowLocked()
	rec := &documentRecord{
		id:        id,
		seq:       b.nextSeqLocked(),
		createdAt: now,
		updatedAt: now,
		attrs:     attrs,
	}
	docs[id] = rec

	return rec.document(collection)
}

// GetDocument loads one document.
func (b *Backend) GetDocument(_ context.Context, collection gateway.Collection, id string) (*gateway.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpGetDocument); err != nil {
		return nil, err
	}

	rec, ok := b.collections[collection][id]
	if !ok {
		return nil, documentNotFound()
	}

	return rec.document(collection)
}

// ListDocuments filters, sorts and pages a collection. Total counts every
// match before paging.
func (b *Backend) ListDocuments(_ context.Context, collection gateway.Collection, query gateway.Query) (*gateway.DocumentList, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpListDocuments); err != nil {
		return nil, err
	}

	filters, err := normaliseFilters(query.Filters)
	if err != nil {
		return nil, err
	}

	var matched []*documentRecord
	for _, rec := range b.collections[collection] {
		if matchesAll(rec, filters) {
			matched = append(matched, rec)
		}
	}

	slices.SortFunc(matched, func(a, c *documentRecord) int {
		for _, order := range query.Orders {
			n := compareValues(a.value(order.Attribute), c.value(order.Attribute))
			if order.Descending {
				n = -n
			}
			if n != 0 {
				return n
			}
		}

		return cmp.Compare(a.seq, c.seq)
	})

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	start := min(max(query.Offset, 0), len(matched))
	end := min(start+limit, len(matched))

	list := &gateway.DocumentList{Total: len(matched), Documents: make([]*gateway.Document, 0, end-start)}
	for _, rec := range matched[start:end] {
		doc, err := rec.document(collection)
		if err != nil {
			return nil, err
		}
		list.Documents = append(list.Documents, doc)
	}

	return list, nil
}

// UpdateDocument merges the attributes present in data into the document.
func (b *Backend) UpdateDocument(_ context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpUpdateDocument); err != nil {
		return nil, err
	}

	rec, ok := b.collections[collection][id]
	if !ok {
		return nil, documentNotFound()
	}

	patch, err := toAttributes(data)
	if err != nil {
		return nil, err
	}

	maps.Copy(rec.attrs, patch)
	rec.updatedAt = b.nowLocked()

	return rec.document(collection)
}

// DeleteDocument removes one document.
func (b *Backend) DeleteDocument(_ context.Context, collection gateway.Collection, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpDeleteDocument); err != nil {
		return err
	}

	docs := b.collections[collection]
	if _, ok := docs[id]; !ok {
		return documentNotFound()
	}
	delete(docs, id)

	return nil
}

// DocumentCount reports how many documents a collection holds.
func (b *Backend) DocumentCount(collection gateway.Collection) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.collections[collection])
}

func (b *Backend) collectionLocked(collection gateway.Collection) map[string]*documentRecord {
	docs, ok := b.collections[collection]
	if !ok {
		docs = make(map[string]*documentRecord)
		b.collections[collection] = docs
	}

	return docs
}

func documentNotFound() *gateway.RemoteError {
	return notFound("document_not_found", "Document with the requested ID could not be found.")
}

func normaliseFilters(filters []gateway.Filter) ([]gateway.Filter, error) {
	out := make([]gateway.Filter, 0, len(filters))
	for _, f := range filters {
		if f.Operator != gateway.OpEqual {
			return nil, badRequest("general_query_invalid", fmt.Sprintf("unsupported operator %q", f.Operator))
		}
		values := make([]any, 0, len(f.Values))
		for _, v := range f.Values {
			nv, err := normaliseValue(v)
			if err != nil {
				return nil, err
			}
			values = append(values, nv)
		}
		out = append(out, gateway.Filter{Attribute: f.Attribute, Operator: f.Operator, Values: values})
	}

	return out, nil
}

func normaliseValue(v any) (any, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, badRequest("general_query_invalid", err.Error())
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, badRequest("general_query_invalid", err.Error())
	}

	return out, nil
}

func matchesAll(rec *documentRecord, filters []gateway.Filter) bool {
	for _, f := range filters {
		if !matchesEqual(rec.value(f.Attribute), f.Values) {
			return false
		}
	}

	return true
}

// matchesEqual reports whether actual equals any value. An array attribute
// matches when any of its elements does.
func matchesEqual(actual any, values []any) bool {
	candidates := []any{actual}
	if arr, ok := actual.([]any); ok {
		candidates = arr
	}

	for _, c := range candidates {
		for _, v := range values {
			if ct, ok := c.(time.Time); ok {
				if vt, ok := v.(time.Time); ok && ct.Equal(vt) {
					return true
				}

				continue
			}
			if reflect.DeepEqual(c, v) {
				return true
			}
		}
	}

	return false
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case nil:
		if b == nil {
			return 0
		}

		return -1
	}
	if b == nil {
		return 1
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
