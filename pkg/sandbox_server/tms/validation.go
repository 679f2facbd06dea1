package tms

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

func ValidateSeedShipmentsRequest(req SeedShipmentsRequest, maxBulkSize int) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Count, validation.Required, validation.Min(1), validation.Max(maxBulkSize)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListShipmentsRequest(req storage.ListShipmentsRequest, maxBulkSize int) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1), validation.Max(maxBulkSize)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
