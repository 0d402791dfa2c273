package dentalink

import (
	"context"

	"dentalink-client/dentalink/query"
	"dentalink-client/dentalink/schemas"
	"dentalink-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

// AppointmentStatusFilters narrows GET /citas/estados. Name is passed
// through unmodified; matching semantics are server-defined.
type AppointmentStatusFilters struct {
	Name *string
}

// FindAppointmentStatuses lists the statuses an appointment can take.
func (c *Client) FindAppointmentStatuses(ctx context.Context, filters *AppointmentStatusFilters) (*schemas.Response[[]schemas.AppointmentStatus], error) {
	ctx, requestID := ensureRequestID(ctx)
	if filters == nil {
		filters = &AppointmentStatusFilters{}
	}

	queryParams, err := query.New("nombre").
		Lk(filters.Name).
		Parse()
	if err != nil {
		c.log.Error("Client.FindAppointmentStatuses error building query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindAppointmentStatuses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	responseBody, err := c.do(ctx, constvars.MethodGet, constvars.EndpointEstadosCita, queryParams, nil)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeList[schemas.AppointmentStatus](responseBody, constvars.EndpointEstadosCita)
	if err != nil {
		c.log.Error("Client.FindAppointmentStatuses error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindAppointmentStatuses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(envelope.Data)),
	)
	return envelope, nil
}
