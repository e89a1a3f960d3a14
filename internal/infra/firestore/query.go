package firestore

import (
	"context"
	"net/http"

	"snapgram/internal/domain/gateway"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const countAlias = "total"

// fieldPath maps an attribute to its stored field. $id addresses the document name.
func fieldPath(attribute string) firestore.FieldPath {
	if attribute == gateway.AttrID {
		return firestore.FieldPath{firestore.DocumentID}
	}

	return firestore.FieldPath{attribute}
}

// filterClause picks the comparison for a filter: one value is an equality,
// several are a membership test.
func filterClause(coll *firestore.CollectionRef, f gateway.Filter) (string, any, error) {
	if f.Operator != gateway.OpEqual {
		return "", nil, &gateway.RemoteError{
			Code:    http.StatusBadRequest,
			Type:    "general_query_invalid",
			Message: "unsupported filter operator " + string(f.Operator),
		}
	}
	if len(f.Values) == 0 {
		return "", nil, &gateway.RemoteError{
			Code:    http.StatusBadRequest,
			Type:    "general_query_invalid",
			Message: "filter on " + f.Attribute + " has no values",
		}
	}

	values := f.Values
	if f.Attribute == gateway.AttrID && coll != nil {
		values = make([]any, 0, len(f.Values))
		for _, v := range f.Values {
			id, ok := v.(string)
			if !ok {
				return "", nil, &gateway.RemoteError{
					Code:    http.StatusBadRequest,
					Type:    "general_query_invalid",
					Message: "document id filter values must be strings",
				}
			}
			values = append(values, coll.Doc(id))
		}
	}

	if len(values) == 1 {
		return "==", values[0], nil
	}

	return "in", values, nil
}

func applyFilters(coll *firestore.CollectionRef, q firestore.Query, filters []gateway.Filter) (firestore.Query, error) {
	for _, f := range filters {
		op, value, err := filterClause(coll, f)
		if err != nil {
			return q, err
		}
		q = q.WherePath(fieldPath(f.Attribute), op, value)
	}

	return q, nil
}

func applyOrders(q firestore.Query, orders []gateway.Order) firestore.Query {
	for _, o := range orders {
		dir := firestore.Asc
		if o.Descending {
			dir = firestore.Desc
		}
		q = q.OrderByPath(fieldPath(o.Attribute), dir)
	}

	return q
}

func count(ctx context.Context, q firestore.Query) (int, error) {
	result, err := q.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, remoteError(err)
	}

	return countValue(result[countAlias])
}

func countValue(v any) (int, error) {
	switch value := v.(type) {
	case *firestorepb.Value:
		return int(value.GetIntegerValue()), nil
	case int64:
		return int(value), nil
	default:
		return 0, &gateway.RemoteError{
			Code:    http.StatusInternalServerError,
			Type:    "general_server_error",
			Message: "unexpected count aggregation result",
			Err:     errors.Errorf("count is %T", v),
		}
	}
}

// remoteError maps a gRPC status onto the backend status it stands for.
// Failures where no response arrived are network errors.
func remoteError(err error) *gateway.RemoteError {
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return gateway.NewNetworkError(err)
		}

		return &gateway.RemoteError{Code: http.StatusInternalServerError, Type: "general_unknown", Message: err.Error(), Err: err}
	}

	code, kind := http.StatusInternalServerError, "general_server_error"
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return gateway.NewNetworkError(err)
	case codes.NotFound:
		code, kind = http.StatusNotFound, "document_not_found"
	case codes.AlreadyExists:
		code, kind = http.StatusConflict, "document_already_exists"
	case codes.Unauthenticated:
		code, kind = http.StatusUnauthorized, "general_unauthorized_scope"
	case codes.PermissionDenied:
		code, kind = http.StatusForbidden, "general_access_forbidden"
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		code, kind = http.StatusBadRequest, "general_query_invalid"
	case codes.ResourceExhausted:
		code, kind = http.StatusTooManyRequests, "general_rate_limit_exceeded"
	}

	return &gateway.RemoteError{Code: code, Type: kind, Message: st.Message(), Err: err}
}
