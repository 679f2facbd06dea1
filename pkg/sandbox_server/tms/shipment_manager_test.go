package tms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
	mock_storage "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/storage"
	"github.com/stretchr/testify/suite"
)

type ShipmentManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	storage *mock_storage.MockShipmentStorage
	tx      *mock_storage.MockTx
	factory *factory.Factory
	manager tms.ShipmentManager
}

func TestShipmentManager(t *testing.T) {
	suite.Run(t, new(ShipmentManagerTestSuite))
}

func (s *ShipmentManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockShipmentStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.factory = factory.New(factory.WithSeed(7))
	s.manager = tms.NewShipmentManager(s.storage, s.factory, 10)
}

func (s *ShipmentManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ShipmentManagerTestSuite) createRequest() tms.CreateShipmentRequest {
	shipment := s.factory.Shipment()
	return tms.CreateShipmentRequest{
		ExternalReference: shipment.ExternalReference,
		Mode:              shipment.Mode,
		EquipmentType:     shipment.EquipmentType,
		LoadingMeters:     shipment.LoadingMeters,
		Customer:          shipment.Customer,
		LineItems:         shipment.LineItems,
		Stops:             shipment.Stops,
	}
}

func (s *ShipmentManagerTestSuite) TestCreateShipment() {
	ts := time.Now().Unix()
	req := s.createRequest()

	var stored model.TmsShipment
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().StoreShipments(gomock.Any(), s.tx, ts, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, shipments ...model.TmsShipment) error {
				s.Require().Len(shipments, 1)
				stored = shipments[0]
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	shipment, err := s.manager.CreateShipment(s.ctx, ts, req)
	s.Require().NoError(err)
	s.NotEmpty(shipment.ID)
	s.False(shipment.ProcessedAt.IsProcessed())
	s.Equal(req.Customer, shipment.Customer)
	s.Equal(req.Stops, shipment.Stops)
	s.Equal(shipment, stored)
}

func (s *ShipmentManagerTestSuite) TestCreateShipmentInvalid() {
	req := s.createRequest()
	req.Stops = req.Stops[:1]

	_, err := s.manager.CreateShipment(s.ctx, time.Now().Unix(), req)
	s.ErrorIs(err, model.ErrInvalidParameter)

	req = s.createRequest()
	req.LineItems[0].PackageType = model.PackageType("BARREL")
	_, err = s.manager.CreateShipment(s.ctx, time.Now().Unix(), req)
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShipmentManagerTestSuite) TestCreateShipmentStorageFailure() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().StoreShipments(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.CreateShipment(s.ctx, time.Now().Unix(), s.createRequest())
	s.ErrorIs(err, model.ErrInfrastructure)
}

func (s *ShipmentManagerTestSuite) TestSeedShipments() {
	ts := time.Now().Unix()

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().StoreShipments(gomock.Any(), s.tx, ts, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, shipments ...model.TmsShipment) error {
				s.Len(shipments, 3)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	shipments, err := s.manager.SeedShipments(s.ctx, ts, tms.SeedShipmentsRequest{Count: 3})
	s.Require().NoError(err)
	s.Len(shipments, 3)
	for _, shipment := range shipments {
		s.NoError(shipment.Validate())
	}
}

func (s *ShipmentManagerTestSuite) TestSeedShipmentsCountOutOfRange() {
	_, err := s.manager.SeedShipments(s.ctx, time.Now().Unix(), tms.SeedShipmentsRequest{Count: 0})
	s.ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.manager.SeedShipments(s.ctx, time.Now().Unix(), tms.SeedShipmentsRequest{Count: 11})
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShipmentManagerTestSuite) TestListShipments() {
	shipments := s.factory.Shipments(2)

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListShipments(gomock.Any(), s.tx, storage.ListShipmentsRequest{Offset: 1, Limit: tms.DefaultListLimit}).Return(storage.ListShipmentsResult{Total: 3, Records: shipments}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	manager := tms.NewShipmentManager(s.storage, s.factory, 0)
	result, err := manager.ListShipments(s.ctx, storage.ListShipmentsRequest{Offset: 1})
	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Equal(shipments, result.Records)
}

func (s *ShipmentManagerTestSuite) TestListShipmentsInvalid() {
	_, err := s.manager.ListShipments(s.ctx, storage.ListShipmentsRequest{Offset: -1})
	s.ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.manager.ListShipments(s.ctx, storage.ListShipmentsRequest{Limit: 11})
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShipmentManagerTestSuite) TestGetShipment() {
	shipment := s.factory.Shipment()

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListShipments(gomock.Any(), s.tx, storage.ListShipmentsRequest{Limit: 1, IDs: []string{shipment.ID}}).Return(storage.ListShipmentsResult{Total: 1, Records: []model.TmsShipment{shipment}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.manager.GetShipment(s.ctx, shipment.ID)
	s.Require().NoError(err)
	s.Equal(shipment, result)
}

func (s *ShipmentManagerTestSuite) TestGetShipmentNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListShipments(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListShipmentsResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.GetShipment(s.ctx, "SHP-404")
	s.ErrorIs(err, model.ErrShipmentNotFound)
}
