package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/playtime/internal/common/clock/mocks"
	"github.com/KirkDiggler/playtime/internal/common/failure"
	uuidMocks "github.com/KirkDiggler/playtime/internal/common/uuid/mocks"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/pricing"
	clientRepo "github.com/KirkDiggler/playtime/internal/repositories/client"
	clientMocks "github.com/KirkDiggler/playtime/internal/repositories/client/mocks"
	promotionRepo "github.com/KirkDiggler/playtime/internal/repositories/promotion"
	promotionMocks "github.com/KirkDiggler/playtime/internal/repositories/promotion/mocks"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	reservationMocks "github.com/KirkDiggler/playtime/internal/repositories/reservation/mocks"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	stationMocks "github.com/KirkDiggler/playtime/internal/repositories/station/mocks"
	storeMocks "github.com/KirkDiggler/playtime/internal/store/mocks"
	ticketMocks "github.com/KirkDiggler/playtime/internal/ticket/mocks"
)

const reservationTestTariff = `
currency = "XOF"
extra_block = "400"

[[step]]
minutes = 15
amount = "500"

[[step]]
minutes = 30
amount = "1000"

[[step]]
minutes = 45
amount = "1250"

[[step]]
minutes = 60
amount = "1500"
`

type ReservationServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockReservationRepo *reservationMocks.MockRepository
	mockClientRepo      *clientMocks.MockRepository
	mockStationRepo     *stationMocks.MockRepository
	mockPromotionRepo   *promotionMocks.MockRepository
	mockTransactor      *storeMocks.MockTransactor
	mockTickets         *ticketMocks.MockGenerator
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	tariff              *pricing.Tariff
	service             Service
	ctx                 context.Context

	// Test data
	testTime          time.Time
	testReservationID string
	testTicket        string
	testClientID      string
	testStationID     string
	testGameID        string
	testOperatorID    string
	testStation       *models.Station
	testClient        *models.Client
	createInput       *CreateReservationInput
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservationRepo = reservationMocks.NewMockRepository(s.mockCtrl)
	s.mockClientRepo = clientMocks.NewMockRepository(s.mockCtrl)
	s.mockStationRepo = stationMocks.NewMockRepository(s.mockCtrl)
	s.mockPromotionRepo = promotionMocks.NewMockRepository(s.mockCtrl)
	s.mockTransactor = storeMocks.NewMockTransactor(s.mockCtrl)
	s.mockTickets = ticketMocks.NewMockGenerator(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 13, 55, 0, 0, time.UTC)
	s.testReservationID = "test-reservation-id"
	s.testTicket = "20250601135500-ABCDEF"
	s.testClientID = "test-client-id"
	s.testStationID = "test-station-id"
	s.testGameID = "test-game-id"
	s.testOperatorID = "test-operator"

	s.testStation = &models.Station{ID: s.testStationID, Name: "PS5 #1", GameIDs: []string{s.testGameID}}
	s.testClient = &models.Client{ID: s.testClientID, Name: "Awa"}
	s.createInput = &CreateReservationInput{
		ClientID:   s.testClientID,
		StationID:  s.testStationID,
		GameID:     s.testGameID,
		Duration:   45 * time.Minute,
		OperatorID: s.testOperatorID,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testReservationID).AnyTimes()
	s.mockTickets.EXPECT().Next(s.testTime).Return(s.testTicket).AnyTimes()
	s.mockTransactor.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	tariff, err := pricing.ParseTariff([]byte(reservationTestTariff))
	s.Require().NoError(err)
	s.tariff = tariff

	svc, err := NewService(&Config{
		ReservationRepo: s.mockReservationRepo,
		ClientRepo:      s.mockClientRepo,
		StationRepo:     s.mockStationRepo,
		PromotionRepo:   s.mockPromotionRepo,
		Transactor:      s.mockTransactor,
		Tariff:          tariff,
		TicketGenerator: s.mockTickets,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ReservationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

func (s *ReservationServiceTestSuite) expectCatalog(promo *models.Promotion) {
	s.mockClientRepo.EXPECT().
		GetClient(gomock.Any(), &clientRepo.GetClientInput{ClientID: s.testClientID}).
		Return(s.testClient, nil)
	s.mockStationRepo.EXPECT().
		GetStation(gomock.Any(), &stationRepo.GetStationInput{StationID: s.testStationID}).
		Return(s.testStation, nil)
	if promo == nil {
		s.mockPromotionRepo.EXPECT().
			GetActivePromotion(gomock.Any(), &promotionRepo.GetActivePromotionInput{Day: models.Day(s.testTime)}).
			Return(nil, promotionRepo.ErrPromotionNotFound)
		return
	}
	s.mockPromotionRepo.EXPECT().
		GetActivePromotion(gomock.Any(), gomock.Any()).
		Return(promo, nil)
}

func (s *ReservationServiceTestSuite) TestNewService_RequiresDependencies() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{ReservationRepo: s.mockReservationRepo})
	s.ErrorIs(err, ErrNilClientRepo)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_FortyFiveMinutes() {
	s.expectCatalog(nil)
	s.mockReservationRepo.EXPECT().
		CreateReservation(gomock.Any(), &reservationRepo.CreateReservationInput{
			Reservation: &models.Reservation{
				ID:           s.testReservationID,
				TicketNumber: s.testTicket,
				ClientID:     s.testClientID,
				StationID:    s.testStationID,
				GameID:       s.testGameID,
				Duration:     45 * time.Minute,
				UnitPrice:    s.tariff.Price(45*time.Minute, nil, s.testTime),
				Status:       models.ReservationStatusPending,
				CreatedBy:    s.testOperatorID,
				CreatedAt:    s.testTime,
				UpdatedAt:    s.testTime,
			},
		}).
		Return(nil)
	s.mockClientRepo.EXPECT().
		AddLoyaltyPoints(gomock.Any(), &clientRepo.AddLoyaltyPointsInput{ClientID: s.testClientID, Points: 3}).
		Return(nil)

	output, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Equal(models.ReservationStatusPending, output.Reservation.Status)
	s.Equal(3, output.PointsAwarded)
	s.Equal("1250", output.Reservation.UnitPrice.String())
	s.Nil(output.Promotion)
	s.Nil(output.Referrer)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_TooShortIsRejectedFirst() {
	s.createInput.Duration = 14 * time.Minute

	_, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.ErrorIs(err, failure.InvalidDuration)
	s.Equal(failure.ReasonDurationTooShort, failure.ReasonOf(err))
}

func (s *ReservationServiceTestSuite) TestCreateReservation_PointsAreFloored() {
	s.createInput.Duration = 59 * time.Minute
	s.expectCatalog(nil)
	s.mockReservationRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClientRepo.EXPECT().
		AddLoyaltyPoints(gomock.Any(), &clientRepo.AddLoyaltyPointsInput{ClientID: s.testClientID, Points: 3}).
		Return(nil)

	output, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Equal(3, output.PointsAwarded)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_CreditsKnownReferrer() {
	s.createInput.ReferralCode = " ami42 "
	referrer := &models.Referrer{ID: "test-referrer-id", Name: "Moussa", Code: "AMI42", Points: 4}

	s.expectCatalog(nil)
	s.mockReservationRepo.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *reservationRepo.CreateReservationInput) error {
			s.Equal("ami42", input.Reservation.ReferralCode)
			return nil
		})
	s.mockClientRepo.EXPECT().AddLoyaltyPoints(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClientRepo.EXPECT().
		FindReferrerByCode(gomock.Any(), &clientRepo.FindReferrerByCodeInput{Code: "ami42"}).
		Return(referrer, nil)
	s.mockClientRepo.EXPECT().
		AddReferralPoint(gomock.Any(), &clientRepo.AddReferralPointInput{ReferrerID: referrer.ID}).
		Return(nil).
		Times(1)

	output, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Equal(referrer, output.Referrer)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_UnknownReferralCodeIsIgnored() {
	s.createInput.ReferralCode = "NOBODY"

	s.expectCatalog(nil)
	s.mockReservationRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClientRepo.EXPECT().AddLoyaltyPoints(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClientRepo.EXPECT().
		FindReferrerByCode(gomock.Any(), gomock.Any()).
		Return(nil, clientRepo.ErrReferrerNotFound)

	output, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Nil(output.Referrer)
	s.Equal("NOBODY", output.Reservation.ReferralCode)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_GameNotOnStation() {
	s.createInput.GameID = "other-game"
	s.mockClientRepo.EXPECT().GetClient(gomock.Any(), gomock.Any()).Return(s.testClient, nil)
	s.mockStationRepo.EXPECT().GetStation(gomock.Any(), gomock.Any()).Return(s.testStation, nil)

	_, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.ErrorIs(err, failure.PreconditionFailed)
	s.Equal(failure.ReasonGameNotSupported, failure.ReasonOf(err))
}

func (s *ReservationServiceTestSuite) TestCreateReservation_AppliesActivePromotion() {
	promo := &models.Promotion{
		ID:        "test-promotion-id",
		Name:      "Tabaski",
		Rate:      decimal.RequireFromString("0.2"),
		StartDate: models.Day(s.testTime),
		EndDate:   models.Day(s.testTime),
		Active:    true,
	}
	s.expectCatalog(promo)
	s.mockReservationRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClientRepo.EXPECT().AddLoyaltyPoints(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Equal("1000", output.Reservation.UnitPrice.String())
	s.Equal(promo.ID, output.Reservation.PromotionID)
	s.Equal(promo, output.Promotion)
}

func (s *ReservationServiceTestSuite) TestCreateReservation_RequiresOperator() {
	s.createInput.OperatorID = " "

	_, err := s.service.CreateReservation(s.ctx, s.createInput)

	s.ErrorIs(err, failure.InvalidInput)
}

func (s *ReservationServiceTestSuite) TestQuoteReservation_HasNoSideEffects() {
	s.mockPromotionRepo.EXPECT().
		GetActivePromotion(gomock.Any(), gomock.Any()).
		Return(nil, promotionRepo.ErrPromotionNotFound).
		Times(2)

	first, err := s.service.QuoteReservation(s.ctx, &QuoteReservationInput{Duration: 50 * time.Minute})
	s.Require().NoError(err)
	second, err := s.service.QuoteReservation(s.ctx, &QuoteReservationInput{Duration: 50 * time.Minute})
	s.Require().NoError(err)

	s.Equal("1500", first.Price.String())
	s.True(first.Price.Equal(second.Price))
	s.Equal("XOF", first.Currency)
}

func (s *ReservationServiceTestSuite) TestCancelReservation_FromPending() {
	s.mockReservationRepo.EXPECT().
		GetReservation(gomock.Any(), &reservationRepo.GetReservationInput{ReservationID: s.testReservationID}).
		Return(&models.Reservation{ID: s.testReservationID, Status: models.ReservationStatusPending}, nil)
	s.mockReservationRepo.EXPECT().
		UpdateReservationStatus(gomock.Any(), &reservationRepo.UpdateReservationStatusInput{
			ReservationID: s.testReservationID,
			Status:        models.ReservationStatusCancelled,
			UpdatedAt:     s.testTime,
		}).
		Return(nil)

	output, err := s.service.CancelReservation(s.ctx, &CancelReservationInput{
		ReservationID: s.testReservationID,
		OperatorID:    s.testOperatorID,
	})

	s.Require().NoError(err)
	s.Equal(models.ReservationStatusCancelled, output.Reservation.Status)
}

func (s *ReservationServiceTestSuite) TestCancelReservation_OnlyFromPending() {
	for _, status := range []models.ReservationStatus{
		models.ReservationStatusActive,
		models.ReservationStatusCompleted,
		models.ReservationStatusCancelled,
	} {
		s.mockReservationRepo.EXPECT().
			GetReservation(gomock.Any(), gomock.Any()).
			Return(&models.Reservation{ID: s.testReservationID, Status: status}, nil)

		_, err := s.service.CancelReservation(s.ctx, &CancelReservationInput{
			ReservationID: s.testReservationID,
			OperatorID:    s.testOperatorID,
		})

		s.ErrorIs(err, failure.InvalidTransition, "status %s", status)
	}
}

func (s *ReservationServiceTestSuite) TestDeleteReservation_RefusedWhileActive() {
	s.mockReservationRepo.EXPECT().
		GetReservation(gomock.Any(), gomock.Any()).
		Return(&models.Reservation{ID: s.testReservationID, Status: models.ReservationStatusActive}, nil)

	err := s.service.DeleteReservation(s.ctx, &DeleteReservationInput{
		ReservationID: s.testReservationID,
		OperatorID:    s.testOperatorID,
	})

	s.ErrorIs(err, failure.PreconditionFailed)
	s.Equal(failure.ReasonReservationActive, failure.ReasonOf(err))
}

func (s *ReservationServiceTestSuite) TestDeleteReservation_AllowedOtherwise() {
	for _, status := range []models.ReservationStatus{
		models.ReservationStatusPending,
		models.ReservationStatusCompleted,
		models.ReservationStatusCancelled,
	} {
		s.mockReservationRepo.EXPECT().
			GetReservation(gomock.Any(), gomock.Any()).
			Return(&models.Reservation{ID: s.testReservationID, Status: status}, nil)
		s.mockReservationRepo.EXPECT().
			DeleteReservation(gomock.Any(), &reservationRepo.DeleteReservationInput{ReservationID: s.testReservationID}).
			Return(nil)

		err := s.service.DeleteReservation(s.ctx, &DeleteReservationInput{
			ReservationID: s.testReservationID,
			OperatorID:    s.testOperatorID,
		})

		s.NoError(err, "status %s", status)
	}
}

func (s *ReservationServiceTestSuite) TestGetReservation_ByTicket() {
	expected := &models.Reservation{ID: s.testReservationID, TicketNumber: s.testTicket}
	s.mockReservationRepo.EXPECT().
		GetReservation(gomock.Any(), &reservationRepo.GetReservationInput{TicketNumber: s.testTicket}).
		Return(expected, nil)

	output, err := s.service.GetReservation(s.ctx, &GetReservationInput{TicketNumber: s.testTicket})

	s.Require().NoError(err)
	s.Equal(expected, output.Reservation)
}
