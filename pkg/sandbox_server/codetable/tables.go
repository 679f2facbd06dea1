package codetable

import "github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"

var Packaging = New("package type",
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeBale, model.PackagingBale},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeBox, model.PackagingBox},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeCrate, model.PackagingCrate},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeCoil, model.PackagingCoil},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeCylinder, model.PackagingCylinder},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeDrum, model.PackagingDrum},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypeOther, model.PackagingOther},
	Pair[model.PackageType, model.BrokerPackagingQualifier]{model.PackageTypePallet, model.PackagingPallet},
)

var EventTypes = New("event type",
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventOrderCreated, model.TmsEventBooked},
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventCancelOrder, model.TmsEventCancelled},
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventDrivingToLoad, model.TmsEventDispatched},
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventOrderLoaded, model.TmsEventPickedUp},
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventDelivered, model.TmsEventDelivered},
	Pair[model.BrokerEventType, model.TmsEventType]{model.BrokerEventETA, model.TmsEventETAChanged},
)

func PackagingQualifierOf(p model.PackageType) (model.BrokerPackagingQualifier, error) {
	return Packaging.Forward(p)
}

func PackageTypeOf(q model.BrokerPackagingQualifier) (model.PackageType, error) {
	return Packaging.Reverse(q)
}

func TmsEventTypeOf(e model.BrokerEventType) (model.TmsEventType, error) {
	return EventTypes.Forward(e)
}

func BrokerEventTypeOf(e model.TmsEventType) (model.BrokerEventType, error) {
	return EventTypes.Reverse(e)
}
