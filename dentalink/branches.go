package dentalink

import (
	"context"

	"dentalink-client/dentalink/query"
	"dentalink-client/dentalink/schemas"
	"dentalink-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

// BranchFilters narrows GET /sucursales. Name is passed through unmodified;
// matching semantics are server-defined.
type BranchFilters struct {
	Name *string
}

// FindBranches lists the clinic branches.
func (c *Client) FindBranches(ctx context.Context, filters *BranchFilters) (*schemas.Response[[]schemas.Branch], error) {
	ctx, requestID := ensureRequestID(ctx)
	if filters == nil {
		filters = &BranchFilters{}
	}

	queryParams, err := query.New("nombre").
		Lk(filters.Name).
		Parse()
	if err != nil {
		c.log.Error("Client.FindBranches error building query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindBranches called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	responseBody, err := c.do(ctx, constvars.MethodGet, constvars.EndpointSucursales, queryParams, nil)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeList[schemas.Branch](responseBody, constvars.EndpointSucursales)
	if err != nil {
		c.log.Error("Client.FindBranches error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindBranches succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(envelope.Data)),
	)
	return envelope, nil
}
