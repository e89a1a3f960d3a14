package appwrite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"snapgram/internal/domain/gateway"

	"github.com/pkg/errors"
)

// Query methods of the backend's JSON query syntax.
const (
	MethodEqual     = "equal"
	MethodOrderAsc  = "orderAsc"
	MethodOrderDesc = "orderDesc"
	MethodLimit     = "limit"
	MethodOffset    = "offset"
)

// QueryParam is the repeated query-string parameter carrying encoded queries.
const QueryParam = "queries[]"

// Query is one entry of the backend's JSON query syntax.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// EncodeQuery renders q as the backend's JSON queries, filters first, then
// orders, then the page bounds.
func EncodeQuery(q gateway.Query) ([]string, error) {
	queries := make([]Query, 0, len(q.Filters)+len(q.Orders)+2)
	for _, f := range q.Filters {
		if f.Operator != gateway.OpEqual {
			return nil, errors.Errorf("unsupported filter operator %q", f.Operator)
		}
		queries = append(queries, Query{Method: MethodEqual, Attribute: f.Attribute, Values: f.Values})
	}
	for _, o := range q.Orders {
		method := MethodOrderAsc
		if o.Descending {
			method = MethodOrderDesc
		}
		queries = append(queries, Query{Method: method, Attribute: o.Attribute})
	}
	if q.Limit > 0 {
		queries = append(queries, Query{Method: MethodLimit, Values: []any{q.Limit}})
	}
	if q.Offset > 0 {
		queries = append(queries, Query{Method: MethodOffset, Values: []any{q.Offset}})
	}

	encoded := make([]string, 0, len(queries))
	for _, query := range queries {
		raw, err := json.Marshal(query)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s query", query.Method)
		}
		encoded = append(encoded, string(raw))
	}

	return encoded, nil
}

// DecodeQuery parses the backend's JSON queries back into a gateway query.
func DecodeQuery(encoded []string) (gateway.Query, error) {
	var q gateway.Query
	for _, raw := range encoded {
		var query Query
		if err := json.Unmarshal([]byte(raw), &query); err != nil {
			return gateway.Query{}, errors.Wrapf(err, "invalid query %q", raw)
		}

		switch query.Method {
		case MethodEqual:
			q.Filters = append(q.Filters, gateway.Equal(query.Attribute, query.Values...))
		case MethodOrderAsc:
			q.Orders = append(q.Orders, gateway.OrderAsc(query.Attribute))
		case MethodOrderDesc:
			q.Orders = append(q.Orders, gateway.OrderDesc(query.Attribute))
		case MethodLimit, MethodOffset:
			n, err := intValue(query.Values)
			if err != nil {
				return gateway.Query{}, errors.Wrapf(err, "invalid %s query", query.Method)
			}
			if query.Method == MethodLimit {
				q.Limit = n
			} else {
				q.Offset = n
			}
		default:
			return gateway.Query{}, errors.Errorf("unsupported query method %q", query.Method)
		}
	}

	return q, nil
}

func intValue(values []any) (int, error) {
	if len(values) != 1 {
		return 0, errors.Errorf("expected one value, got %d", len(values))
	}
	n, ok := values[0].(float64)
	if !ok || n < 0 || n != float64(int(n)) {
		return 0, errors.Errorf("expected a non-negative integer, got %v", values[0])
	}

	return int(n), nil
}

// SplitDocument separates backend metadata (keys starting with "$") from the
// attributes of a raw document.
func SplitDocument(raw json.RawMessage, collection gateway.Collection) (*gateway.Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.WithStack(err)
	}

	var meta struct {
		ID        string `json:"$id"`
		CreatedAt string `json:"$createdAt"`
		UpdatedAt string `json:"$updatedAt"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errors.WithStack(err)
	}

	for key := range fields {
		if strings.HasPrefix(key, "$") {
			delete(fields, key)
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &gateway.Document{
		ID:         meta.ID,
		Collection: collection,
		CreatedAt:  parseTimestamp(meta.CreatedAt),
		UpdatedAt:  parseTimestamp(meta.UpdatedAt),
		Data:       data,
	}, nil
}

type documentListResponse struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

func (c *Client) documentsPath(collection gateway.Collection) string {
	return "/databases/" + url.PathEscape(c.settings.DatabaseID) +
		"/collections/" + url.PathEscape(c.settings.collectionID(collection)) + "/documents"
}

func (c *Client) documentPath(collection gateway.Collection, id string) string {
	return c.documentsPath(collection) + "/" + url.PathEscape(id)
}

func malformedDocument(err error) *gateway.RemoteError {
	return &gateway.RemoteError{
		Code:    http.StatusOK,
		Type:    "general_server_error",
		Message: "malformed document in response",
		Err:     err,
	}
}

func (c *Client) document(ctx context.Context, method, path string, collection gateway.Collection, body any) (*gateway.Document, error) {
	var raw json.RawMessage
	if _, err := c.call(ctx, method, path, body, &raw); err != nil {
		return nil, err
	}

	doc, err := SplitDocument(raw, collection)
	if err != nil {
		return nil, malformedDocument(err)
	}

	return doc, nil
}

// CreateDocument creates a document under id.
func (c *Client) CreateDocument(ctx context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	body := map[string]any{
		"documentId": id,
		"data":       data,
	}

	return c.document(ctx, http.MethodPost, c.documentsPath(collection), collection, body)
}

// GetDocument fetches a document.
func (c *Client) GetDocument(ctx context.Context, collection gateway.Collection, id string) (*gateway.Document, error) {
	return c.document(ctx, http.MethodGet, c.documentPath(collection, id), collection, nil)
}

// ListDocuments lists one page of a collection.
func (c *Client) ListDocuments(ctx context.Context, collection gateway.Collection, query gateway.Query) (*gateway.DocumentList, error) {
	encoded, err := EncodeQuery(query)
	if err != nil {
		return nil, &gateway.RemoteError{Code: http.StatusBadRequest, Type: "general_query_invalid", Message: err.Error(), Err: err}
	}

	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParamsFromValues(url.Values{QueryParam: encoded})

	resp, err := c.execute(req, http.MethodGet, c.documentsPath(collection))
	if err != nil {
		return nil, err
	}

	var out documentListResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, malformedDocument(errors.WithStack(err))
	}

	list := &gateway.DocumentList{Total: out.Total, Documents: make([]*gateway.Document, 0, len(out.Documents))}
	for _, raw := range out.Documents {
		doc, err := SplitDocument(raw, collection)
		if err != nil {
			return nil, malformedDocument(err)
		}
		list.Documents = append(list.Documents, doc)
	}

	return list, nil
}

// UpdateDocument applies a partial update.
func (c *Client) UpdateDocument(ctx context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	return c.document(ctx, http.MethodPatch, c.documentPath(collection, id), collection, map[string]any{"data": data})
}

// DeleteDocument deletes a document.
func (c *Client) DeleteDocument(ctx context.Context, collection gateway.Collection, id string) error {
	_, err := c.call(ctx, http.MethodDelete, c.documentPath(collection, id), nil, nil)

	return err
}
