package broker

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/samber/lo"
)

var eventTypes = lo.Map(codetable.EventTypes.Keys(), func(e model.BrokerEventType, _ int) interface{} { return e })

func ValidateSeedEventsRequest(req SeedEventsRequest, maxBulkSize int) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.EventType, validation.Required, validation.In(eventTypes...)),
		validation.Field(&req.ShipmentIDs, validation.Required, validation.Length(1, maxBulkSize), validation.Each(validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListEventsRequest(req storage.ListBrokerEventsRequest, maxBulkSize int) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1), validation.Max(maxBulkSize)),
		validation.Field(&req.EventType, validation.In(eventTypes...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
