package dentalink

import (
	"context"
	"fmt"
	"time"

	"dentalink-client/dentalink/query"
	"dentalink-client/dentalink/schemas"
	"dentalink-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

// AppointmentFilters narrows GET /citas. Nil fields place no constraint on
// that dimension. Date bounds are inclusive calendar dates; time of day is
// ignored by the wire format.
type AppointmentFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	StatusID  *int
	BranchID  *int
}

// UpdateAppointmentRequest is a partial update for PUT /citas/{id}; only
// non-nil fields are sent.
type UpdateAppointmentRequest struct {
	StatusID        *int          `json:"id_estado,omitempty"`
	Date            *schemas.Date `json:"fecha,omitempty"`
	StartTime       *string       `json:"hora_inicio,omitempty"`
	EndTime         *string       `json:"hora_fin,omitempty"`
	Duration        *int          `json:"duracion,omitempty"`
	ChairID         *int          `json:"id_sillon,omitempty"`
	AttentionReason *string       `json:"motivo_atencion,omitempty"`
	Comments        *string       `json:"comentarios,omitempty"`
}

// FindAppointments lists appointments matching the optional filters. The
// server applies the filtering; records come back in API order.
func (c *Client) FindAppointments(ctx context.Context, filters *AppointmentFilters) (*schemas.Response[[]schemas.Appointment], error) {
	ctx, requestID := ensureRequestID(ctx)
	if filters == nil {
		filters = &AppointmentFilters{}
	}

	queryParams, err := query.New("fecha").
		Gte(filters.StartDate).
		Lte(filters.EndDate).
		Field("id_sucursal").Eq(filters.BranchID).
		Field("id_estado").Eq(filters.StatusID).
		Parse()
	if err != nil {
		c.log.Error("Client.FindAppointments error building query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	responseBody, err := c.do(ctx, constvars.MethodGet, constvars.EndpointCitas, queryParams, nil)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeList[schemas.Appointment](responseBody, constvars.EndpointCitas)
	if err != nil {
		c.log.Error("Client.FindAppointments error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(envelope.Data)),
	)
	return envelope, nil
}

// FindAppointmentByID fetches a single appointment. A 404 surfaces as
// *exceptions.NotFoundError.
func (c *Client) FindAppointmentByID(ctx context.Context, id int) (*schemas.Response[schemas.Appointment], error) {
	ctx, requestID := ensureRequestID(ctx)
	endpoint := fmt.Sprintf(constvars.EndpointCitaByIDFmt, id)

	c.log.Info("Client.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCitaIDKey, id),
	)

	responseBody, err := c.do(ctx, constvars.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeSingle[schemas.Appointment](responseBody, endpoint)
	if err != nil {
		c.log.Error("Client.FindAppointmentByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.FindAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCitaIDKey, envelope.Data.ID),
	)
	return envelope, nil
}

// UpdateAppointment applies a partial update and returns the updated record.
// The response envelope carries no pagination links.
func (c *Client) UpdateAppointment(ctx context.Context, id int, request *UpdateAppointmentRequest) (*schemas.Response[schemas.Appointment], error) {
	ctx, requestID := ensureRequestID(ctx)
	endpoint := fmt.Sprintf(constvars.EndpointCitaByIDFmt, id)
	if request == nil {
		request = &UpdateAppointmentRequest{}
	}

	c.log.Info("Client.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCitaIDKey, id),
	)

	responseBody, err := c.do(ctx, constvars.MethodPut, endpoint, nil, request)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeSingle[schemas.Appointment](responseBody, endpoint)
	if err != nil {
		c.log.Error("Client.UpdateAppointment error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("Client.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCitaIDKey, envelope.Data.ID),
	)
	return envelope, nil
}
