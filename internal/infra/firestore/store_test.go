package firestore

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"snapgram/internal/domain/gateway"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToAttributes(t *testing.T) {
	attrs, err := toAttributes(gateway.SaveDocument{User: "u1", Post: "p1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"user": "u1", "post": "p1"}, attrs)

	_, err = toAttributes([]string{"not", "an", "object"})
	assert.Equal(t, http.StatusBadRequest, gateway.RemoteCode(err))

	_, err = toAttributes(map[string]any{"$createdAt": "x"})
	assert.Equal(t, http.StatusBadRequest, gateway.RemoteCode(err), "metadata keys are reserved")
}

func TestToDocument(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	updated := created.Add(time.Minute)

	doc, err := toDocument(gateway.CollectionPosts, "p1", map[string]any{
		gateway.AttrCreatedAt: created,
		gateway.AttrUpdatedAt: updated,
		"$permissions":        []any{},
		"caption":             "hi",
		"likes":               []any{"u1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", doc.ID)
	assert.Equal(t, gateway.CollectionPosts, doc.Collection)
	assert.True(t, doc.CreatedAt.Equal(created))
	assert.Equal(t, time.UTC, doc.CreatedAt.Location())
	assert.True(t, doc.UpdatedAt.Equal(updated))

	var attrs map[string]any
	require.NoError(t, json.Unmarshal(doc.Data, &attrs))
	assert.Equal(t, map[string]any{"caption": "hi", "likes": []any{"u1"}}, attrs)
}

func TestToUpdates(t *testing.T) {
	updates := toUpdates(map[string]any{"a.b": 1})

	require.Len(t, updates, 1)
	assert.Equal(t, firestore.FieldPath{"a.b"}, updates[0].FieldPath, "keys are not split on dots")
	assert.Empty(t, updates[0].Path)
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, firestore.FieldPath{firestore.DocumentID}, fieldPath(gateway.AttrID))
	assert.Equal(t, firestore.FieldPath{gateway.AttrCreatedAt}, fieldPath(gateway.AttrCreatedAt))
	assert.Equal(t, firestore.FieldPath{"creator"}, fieldPath("creator"))
}

func TestFilterClause(t *testing.T) {
	testCases := []struct {
		name     string
		filter   gateway.Filter
		op       string
		value    any
		wantCode int
	}{
		{name: "single value", filter: gateway.Equal("creator", "u1"), op: "==", value: "u1"},
		{name: "several values", filter: gateway.Equal("creator", "u1", "u2"), op: "in", value: []any{"u1", "u2"}},
		{name: "no values", filter: gateway.Equal("creator"), wantCode: http.StatusBadRequest},
		{name: "unsupported operator", filter: gateway.Filter{Attribute: "x", Operator: "gt", Values: []any{1}}, wantCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, value, err := filterClause(nil, tc.filter)

			if tc.wantCode != 0 {
				assert.Equal(t, tc.wantCode, gateway.RemoteCode(err))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.op, op)
			assert.Equal(t, tc.value, value)
		})
	}
}

func TestCountValue(t *testing.T) {
	n, err := countValue(&firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 42}})
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = countValue(int64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = countValue("nope")
	assert.Equal(t, http.StatusInternalServerError, gateway.RemoteCode(err))
}

func TestRemoteError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{name: "not found", err: status.Error(codes.NotFound, "missing"), code: http.StatusNotFound, kind: "document_not_found"},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "dup"), code: http.StatusConflict, kind: "document_already_exists"},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "who"), code: http.StatusUnauthorized, kind: "general_unauthorized_scope"},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "no"), code: http.StatusForbidden, kind: "general_access_forbidden"},
		{name: "failed precondition", err: status.Error(codes.FailedPrecondition, "index"), code: http.StatusBadRequest, kind: "general_query_invalid"},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), code: 0, kind: gateway.TypeNetwork},
		{name: "context canceled", err: context.Canceled, code: 0, kind: gateway.TypeNetwork},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError, kind: "general_unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			remoteErr := remoteError(tc.err)

			assert.Equal(t, tc.code, remoteErr.Code)
			assert.Equal(t, tc.kind, remoteErr.Type)
			assert.ErrorIs(t, remoteErr, tc.err)
		})
	}
}
