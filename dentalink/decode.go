package dentalink

import (
	"dentalink-client/dentalink/exceptions"
	"dentalink-client/dentalink/schemas"
	"dentalink-client/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// decodeList decodes a list envelope and validates the cursor (when present)
// and every record against the expected shape.
func decodeList[T any](payload []byte, endpoint string) (*schemas.Response[[]T], error) {
	var envelope schemas.Response[[]T]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, endpoint)
	}
	if envelope.Links != nil {
		if err := utils.ValidateStruct(envelope.Links); err != nil {
			return nil, exceptions.ErrResponseValidation(err, endpoint)
		}
	}
	for i := range envelope.Data {
		if err := utils.ValidateStruct(&envelope.Data[i]); err != nil {
			return nil, exceptions.ErrResponseValidation(err, endpoint)
		}
	}
	return &envelope, nil
}

// decodeSingle decodes a single-record envelope; such responses carry no
// pagination links.
func decodeSingle[T any](payload []byte, endpoint string) (*schemas.Response[T], error) {
	var envelope schemas.Response[T]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, endpoint)
	}
	if err := utils.ValidateStruct(&envelope.Data); err != nil {
		return nil, exceptions.ErrResponseValidation(err, endpoint)
	}
	return &envelope, nil
}
