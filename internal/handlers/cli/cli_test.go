package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/playtime/internal/common/failure"
	"github.com/KirkDiggler/playtime/internal/models"
	"github.com/KirkDiggler/playtime/internal/services/catalog"
	catalogMocks "github.com/KirkDiggler/playtime/internal/services/catalog/mocks"
	"github.com/KirkDiggler/playtime/internal/services/messaging"
	"github.com/KirkDiggler/playtime/internal/services/report"
	reportMocks "github.com/KirkDiggler/playtime/internal/services/report/mocks"
	"github.com/KirkDiggler/playtime/internal/services/reservation"
	reservationMocks "github.com/KirkDiggler/playtime/internal/services/reservation/mocks"
	"github.com/KirkDiggler/playtime/internal/services/session"
	sessionMocks "github.com/KirkDiggler/playtime/internal/services/session/mocks"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

type blockingWatcher struct{}

func (blockingWatcher) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

type CLITestSuite struct {
	suite.Suite
	mockCtrl               *gomock.Controller
	mockReservationService *reservationMocks.MockService
	mockSessionService     *sessionMocks.MockService
	mockReportService      *reportMocks.MockService
	mockCatalogService     *catalogMocks.MockService
	events                 chan watchdog.Event
	cli                    *CLI
	ctx                    context.Context

	out    bytes.Buffer
	errOut bytes.Buffer
	now    time.Time
}

func (s *CLITestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservationService = reservationMocks.NewMockService(s.mockCtrl)
	s.mockSessionService = sessionMocks.NewMockService(s.mockCtrl)
	s.mockReportService = reportMocks.NewMockService(s.mockCtrl)
	s.mockCatalogService = catalogMocks.NewMockService(s.mockCtrl)
	s.events = make(chan watchdog.Event, 4)
	s.ctx = context.Background()
	s.out.Reset()
	s.errOut.Reset()
	s.now = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	messages, err := messaging.NewService(&messaging.ServiceConfig{Currency: "XOF"})
	s.Require().NoError(err)

	c, err := New(&Config{
		ReservationService: s.mockReservationService,
		SessionService:     s.mockSessionService,
		ReportService:      s.mockReportService,
		CatalogService:     s.mockCatalogService,
		MessagingService:   messages,
		Watcher:            blockingWatcher{},
		Events:             s.events,
		Operator:           "op-1",
		Currency:           "XOF",
		Location:           time.UTC,
	})
	s.Require().NoError(err)
	s.cli = c
}

func (s *CLITestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) run(args ...string) error {
	cmd := s.cli.Command()
	cmd.SetOut(&s.out)
	cmd.SetErr(&s.errOut)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(s.ctx)
}

func (s *CLITestSuite) TestNewRequiresServices() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{ReservationService: s.mockReservationService})
	s.EqualError(err, "session service cannot be nil")
}

func (s *CLITestSuite) TestStart() {
	s.mockSessionService.EXPECT().
		StartSession(gomock.Any(), &session.StartSessionInput{ReservationID: "res-1", OperatorID: "op-1"}).
		Return(&session.StartSessionOutput{
			Session:   &models.Session{ID: "sess-1", StationID: "ps5-1"},
			Remaining: 30 * time.Minute,
		}, nil)

	s.Require().NoError(s.run("start", "res-1"))

	s.Equal("Session sess-1 started on ps5-1. 30:00 left.\n", s.out.String())
}

func (s *CLITestSuite) TestOperatorFlagOverridesDefault() {
	s.mockSessionService.EXPECT().
		PauseSession(gomock.Any(), &session.PauseSessionInput{SessionID: "sess-1", OperatorID: "op-2"}).
		Return(&session.PauseSessionOutput{
			Session:   &models.Session{ID: "sess-1"},
			Remaining: 10 * time.Minute,
		}, nil)

	s.Require().NoError(s.run("pause", "sess-1", "--operator", "op-2"))

	s.Contains(s.out.String(), "10:00 frozen")
}

func (s *CLITestSuite) TestStartOnOccupiedStationPrintsMessage() {
	occupied := failure.Newf(failure.PreconditionFailed, failure.ReasonStationOccupied, "station %s", "ps5-1")
	s.mockSessionService.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(nil, occupied)

	err := s.run("start", "res-1")

	s.ErrorIs(err, failure.PreconditionFailed)
	s.Contains(s.errOut.String(), "Station occupied:")
	s.Empty(s.out.String())
}

func (s *CLITestSuite) TestBusyStoreAsksForRetry() {
	contention := failure.New(failure.PersistenceContention, failure.ReasonDatabaseBusy, "")
	s.mockSessionService.EXPECT().
		ResumeSession(gomock.Any(), gomock.Any()).
		Return(nil, failure.Wrap(failure.PersistenceFailure, failure.ReasonDatabaseBusy, contention))

	err := s.run("resume", "sess-1")

	s.Error(err)
	s.Contains(s.errOut.String(), "Run the command again.")
}

func (s *CLITestSuite) TestTerminateTwiceIsNotAnError() {
	s.mockSessionService.EXPECT().
		TerminateSession(gomock.Any(), &session.TerminateSessionInput{SessionID: "sess-1", OperatorID: "op-1"}).
		Return(nil, failure.New(failure.AlreadyTerminated, failure.ReasonSessionCompleted, "session sess-1"))

	s.NoError(s.run("terminate", "sess-1"))

	s.Contains(s.errOut.String(), "Session already ended")
}

func (s *CLITestSuite) TestTerminatePrintsPlayedAndUnused() {
	s.mockSessionService.EXPECT().
		TerminateSession(gomock.Any(), gomock.Any()).
		Return(&session.TerminateSessionOutput{
			Session: &models.Session{ID: "sess-1"},
			Played:  15 * time.Minute,
			Unused:  30 * time.Minute,
		}, nil)

	s.Require().NoError(s.run("stop", "sess-1"))

	s.Equal("Session sess-1 completed. Played 15:00, unused 30:00.\n", s.out.String())
}

func (s *CLITestSuite) TestExtendRejectsNonNumericMinutes() {
	err := s.run("extend", "sess-1", "ten", "cash")

	s.ErrorIs(err, failure.InvalidInput)
	s.Contains(s.errOut.String(), "Invalid value")
}

func (s *CLITestSuite) TestExtendPrintsReceipt() {
	s.mockSessionService.EXPECT().
		ExtendSession(gomock.Any(), &session.ExtendSessionInput{
			SessionID:         "sess-1",
			AdditionalMinutes: 15,
			PaymentMethod:     models.PaymentMethodWave,
			OperatorID:        "op-1",
		}).
		Return(&session.ExtendSessionOutput{
			Session:   &models.Session{ID: "sess-1"},
			Remaining: 35 * time.Minute,
			Receipt: &models.Receipt{
				Number:   "R20250601-0001",
				Amount:   decimal.NewFromInt(500),
				IssuedAt: s.now,
			},
		}, nil)

	s.Require().NoError(s.run("extend", "sess-1", "15", "Wave"))

	s.Contains(s.out.String(), "extended by 15 min. 35:00 left.")
	s.Contains(s.out.String(), "Receipt R20250601-0001  500 XOF  wave  2025-06-01 14:30")
}

func (s *CLITestSuite) TestStatusReportsExpiry() {
	s.mockSessionService.EXPECT().
		GetSession(gomock.Any(), &session.GetSessionInput{SessionID: "sess-1"}).
		Return(&session.GetSessionOutput{
			Session: &models.Session{ID: "sess-1", StationID: "ps5-1"},
			Status:  models.SessionStatusActive,
			Elapsed: 30 * time.Minute,
			Expired: true,
		}, nil)

	s.Require().NoError(s.run("status", "sess-1"))

	s.Contains(s.out.String(), "Played 30:00  Remaining 00:00")
	s.Contains(s.out.String(), "Paid time is over")
}

func (s *CLITestSuite) TestReserve() {
	s.mockReservationService.EXPECT().
		CreateReservation(gomock.Any(), &reservation.CreateReservationInput{
			ClientID:     "cl-1",
			StationID:    "ps5-1",
			GameID:       "fc25",
			Duration:     45 * time.Minute,
			ReferralCode: "AWA10",
			OperatorID:   "op-1",
		}).
		Return(&reservation.CreateReservationOutput{
			Reservation: &models.Reservation{
				ID:           "res-1",
				TicketNumber: "20250601143000-ABCDEF",
				ClientID:     "cl-1",
				StationID:    "ps5-1",
				GameID:       "fc25",
				Duration:     45 * time.Minute,
				UnitPrice:    decimal.NewFromInt(1000),
				Status:       models.ReservationStatusPending,
			},
			Promotion:     &models.Promotion{Name: "June", Rate: decimal.RequireFromString("0.2")},
			PointsAwarded: 3,
			Referrer:      &models.Referrer{Name: "Awa"},
		}, nil)

	s.Require().NoError(s.run("reserve", "--client", "cl-1", "--station", "ps5-1", "--game", "fc25", "--minutes", "45", "--referral", "AWA10"))

	out := s.out.String()
	s.Contains(out, "20250601143000-ABCDEF  pending")
	s.Contains(out, "Price 1000 XOF with June (-20%)")
	s.Contains(out, "Client cl-1 earned 3 points")
	s.Contains(out, "Referrer Awa credited")
}

func (s *CLITestSuite) TestReserveRequiresFlags() {
	s.Error(s.run("reserve", "--client", "cl-1"))
}

func (s *CLITestSuite) TestQuote() {
	s.mockReservationService.EXPECT().
		QuoteReservation(gomock.Any(), &reservation.QuoteReservationInput{Duration: time.Hour}).
		Return(&reservation.QuoteReservationOutput{Base: decimal.NewFromInt(1500), Price: decimal.NewFromInt(1500)}, nil)

	s.Require().NoError(s.run("quote", "60"))

	s.Equal("60 min: 1500 XOF\n", s.out.String())
}

func (s *CLITestSuite) TestReservationByTicket() {
	s.mockReservationService.EXPECT().
		GetReservation(gomock.Any(), &reservation.GetReservationInput{TicketNumber: "T-1"}).
		Return(&reservation.GetReservationOutput{Reservation: &models.Reservation{
			ID: "res-1", TicketNumber: "T-1", Status: models.ReservationStatusActive, Duration: 30 * time.Minute,
		}}, nil)

	s.Require().NoError(s.run("reservation", "T-1", "--ticket"))

	s.Contains(s.out.String(), "T-1  active")
}

func (s *CLITestSuite) TestDeleteActiveReservationRefused() {
	s.mockReservationService.EXPECT().
		DeleteReservation(gomock.Any(), &reservation.DeleteReservationInput{ReservationID: "res-1", OperatorID: "op-1"}).
		Return(failure.New(failure.PreconditionFailed, failure.ReasonReservationActive, ""))

	s.Error(s.run("delete", "res-1"))

	s.Contains(s.errOut.String(), "Reservation in play")
}

func (s *CLITestSuite) TestBoard() {
	s.mockReportService.EXPECT().
		GetStationBoard(gomock.Any(), &report.GetStationBoardInput{}).
		Return(&report.GetStationBoardOutput{Board: &models.Board{Stations: []*models.StationStatus{
			{StationID: "ps5-1", StationName: "PS5 #1", State: models.StationStatePaused, SessionID: "sess-1", Remaining: 10 * time.Minute},
			{StationID: "ps5-2", StationName: "PS5 #2", State: models.StationStateFree},
		}}}, nil)

	s.Require().NoError(s.run("board"))

	s.Equal("PS5 #1        Paused  10:00 frozen  [sess-1]\nPS5 #2        Free\n", s.out.String())
}

func (s *CLITestSuite) TestReportForDay() {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.mockReportService.EXPECT().
		GetDailyActivity(gomock.Any(), &report.GetDailyActivityInput{Day: day}).
		Return(&report.GetDailyActivityOutput{
			Day: day,
			Activities: []report.Activity{
				report.ReservationActivity{Reservation: &models.Reservation{
					TicketNumber: "T-1", StationID: "ps5-1", UnitPrice: decimal.NewFromInt(1000),
					Status: models.ReservationStatusCompleted, CreatedAt: day.Add(10 * time.Hour),
				}},
				report.PaymentActivity{Payment: &models.Payment{
					SessionID: "sess-1", Method: models.PaymentMethodCash, Context: models.PaymentContextExtension,
					Amount: decimal.NewFromInt(500), CreatedAt: day.Add(11 * time.Hour),
				}},
			},
			ReservationCount: 1,
			PaymentCount:     1,
			ReservationTotal: decimal.NewFromInt(1000),
			PaymentTotal:     decimal.NewFromInt(500),
			Total:            decimal.NewFromInt(1500),
		}, nil)

	s.Require().NoError(s.run("report", "--day", "2025-06-01"))

	out := s.out.String()
	s.Contains(out, "Activity for 2025-06-01")
	s.Contains(out, "10:00  reservation T-1  ps5-1  1000 XOF")
	s.Contains(out, "11:00  extension   sess-1  cash  500 XOF")
	s.Contains(out, "Total            1500 XOF")
}

func (s *CLITestSuite) TestReportRejectsBadDay() {
	s.ErrorIs(s.run("report", "--day", "June 1st"), failure.InvalidInput)
}

func (s *CLITestSuite) TestImport() {
	path := filepath.Join(s.T().TempDir(), "catalog.toml")
	s.Require().NoError(os.WriteFile(path, []byte(`
[[game]]
id = "fc25"
title = "EA Sports FC 25"

[[station]]
id = "ps5-1"
name = "PS5 #1"
games = ["fc25"]
`), 0o600))

	s.mockCatalogService.EXPECT().
		ImportCatalog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *catalog.ImportCatalogInput) (*catalog.ImportCatalogOutput, error) {
			s.Equal("op-1", input.OperatorID)
			s.Require().Len(input.Catalog.Stations, 1)
			s.Equal([]string{"fc25"}, input.Catalog.Stations[0].GameIDs)
			return &catalog.ImportCatalogOutput{Games: 1, Stations: 1}, nil
		})

	s.Require().NoError(s.run("import", path))

	s.Contains(s.out.String(), "Imported 1 games, 1 stations, 0 clients")
}

func (s *CLITestSuite) TestOutOfServiceClear() {
	s.mockCatalogService.EXPECT().
		SetStationOutOfService(gomock.Any(), &catalog.SetStationOutOfServiceInput{StationID: "sim-1", OperatorID: "op-1"}).
		Return(nil)

	s.Require().NoError(s.run("out-of-service", "sim-1", "--clear"))

	s.Contains(s.out.String(), "back in service")
}

func (s *CLITestSuite) TestWatchPromptsUntilEventsClose() {
	s.mockReportService.EXPECT().
		GetStationBoard(gomock.Any(), gomock.Any()).
		Return(&report.GetStationBoardOutput{Board: &models.Board{Stations: []*models.StationStatus{
			{StationID: "ps5-1", StationName: "PS5 #1"},
		}}}, nil)

	s.events <- watchdog.Event{Kind: watchdog.EventLowTime, SessionID: "sess-1", StationID: "ps5-1", Remaining: 2 * time.Minute, At: s.now}
	s.events <- watchdog.Event{Kind: watchdog.EventSessionEnded, SessionID: "sess-1", StationID: "ps5-1", At: s.now.Add(2 * time.Minute)}
	close(s.events)

	s.Require().NoError(s.run("watch"))

	out := s.out.String()
	s.Contains(out, "[14:30] Low time: PS5 #1: 02:00 left.")
	s.Contains(out, "[14:32] Time is up: PS5 #1: paid time is over.")
	s.Contains(out, "terminate sess-1")
}
