package mapping

import (
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

// PhysicalKey identifies physically identical packages. Numbers are kept as
// rounded decimal strings, missing dimensions as "".
type PhysicalKey struct {
	Packaging model.BrokerPackagingQualifier
	Weight    string
	Width     string
	Length    string
	Height    string
}

// ExpandLineItems turns every line item into TotalPackages individual handling units.
func ExpandLineItems(items []model.TmsLineItem) ([]model.BrokerHandlingUnit, error) {
	units := make([]model.BrokerHandlingUnit, 0)
	for _, item := range items {
		qualifier, err := codetable.PackagingQualifierOf(item.PackageType)
		if err != nil {
			return nil, err
		}
		for i := 0; i < item.TotalPackages; i++ {
			units = append(units, model.BrokerHandlingUnit{
				PackagingQualifier: qualifier,
				GrossWeight:        item.PackageWeight,
				Width:              item.Width,
				Length:             item.Length,
				Height:             item.Height,
			})
		}
	}
	return units, nil
}

// GroupLineItems counts the packages of the line items per physical key.
func GroupLineItems(precision int32, items []model.TmsLineItem) (map[PhysicalKey]int, error) {
	groups := make(map[PhysicalKey]int)
	for _, item := range items {
		qualifier, err := codetable.PackagingQualifierOf(item.PackageType)
		if err != nil {
			return nil, err
		}
		if item.TotalPackages <= 0 {
			continue
		}
		key := physicalKey(precision, qualifier, item.PackageWeight, item.Width, item.Length, item.Height)
		groups[key] += item.TotalPackages
	}
	return groups, nil
}

// GroupHandlingUnits counts handling units per physical key.
// GroupHandlingUnits(ExpandLineItems(x)) equals GroupLineItems(x).
func GroupHandlingUnits(precision int32, units []model.BrokerHandlingUnit) map[PhysicalKey]int {
	groups := make(map[PhysicalKey]int)
	for _, unit := range units {
		key := physicalKey(precision, unit.PackagingQualifier, unit.GrossWeight, unit.Width, unit.Length, unit.Height)
		groups[key]++
	}
	return groups
}

func physicalKey(precision int32, qualifier model.BrokerPackagingQualifier, weight float64, width, length, height *float64) PhysicalKey {
	return PhysicalKey{
		Packaging: qualifier,
		Weight:    roundedString(precision, &weight),
		Width:     roundedString(precision, width),
		Length:    roundedString(precision, length),
		Height:    roundedString(precision, height),
	}
}

func roundedString(precision int32, v *float64) string {
	if v == nil {
		return ""
	}
	return model.NewDecimalFromFloat(*v).Round(precision).String()
}
