//go:build unit

package graph_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/handler/graph"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"
	"reservation-service/tests/common/builder"
	"reservation-service/tests/common/httptest"
	commandsmock "reservation-service/tests/mock/commands"
	queriesmock "reservation-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GraphHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func (s *GraphHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	resolver := graph.NewResolver(s.mockCommands, s.mockQueries)
	schema, err := graph.NewSchema(resolver)
	s.Require().NoError(err)

	s.router.POST("/graphql", gin.WrapH(graph.NewHandler(schema)))
}

func (s *GraphHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGraphHandlerSuite(t *testing.T) {
	suite.Run(t, new(GraphHandlerTestSuite))
}

type reservationJSON struct {
	ID           int64  `json:"id"`
	GuestID      int64  `json:"guestId"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       string `json:"status"`
	Room         *struct {
		ID         int64  `json:"id"`
		RoomNumber string `json:"roomNumber"`
		Status     string `json:"status"`
	} `json:"room"`
	Guest *struct {
		ID       int64   `json:"id"`
		FullName *string `json:"fullName"`
	} `json:"guest"`
}

func (s *GraphHandlerTestSuite) decodeField(resp *httptest.GraphQLResponse, field string, target any) {
	raw, ok := resp.Data[field]
	s.Require().True(ok, "field %q missing from response data", field)
	s.Require().NoError(json.Unmarshal(raw, target))
}

// ================================================================================
// Queries
// ================================================================================

func (s *GraphHandlerTestSuite) TestReservationQuery() {
	s.Run("returns the reservation with projections", func() {
		b := builder.NewReservationBuilder()
		view := b.BuildView()
		view.Room = queries.RoomViewFromSnapshot(b.BuildRoomSnapshot("reserved"))
		view.Guest = queries.GuestViewFromSnapshot(b.BuildGuestSnapshot())

		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		w, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservation(id: 1) { id guestId roomId checkInDate checkOutDate status room { id roomNumber status } guest { id fullName } } }`, nil)

		s.Equal(http.StatusOK, w.Code)
		s.Empty(resp.Errors)

		var got reservationJSON
		s.decodeField(resp, "reservation", &got)
		s.Equal(b.ID, got.ID)
		s.Equal(b.GuestID, got.GuestID)
		s.Equal(b.RoomID, got.RoomID)
		s.Equal("2026-09-01", got.CheckInDate)
		s.Equal("2026-09-04", got.CheckOutDate)
		s.Equal("confirmed", got.Status)
		s.Require().NotNil(got.Room)
		s.Equal("101", got.Room.RoomNumber)
		s.Equal("reserved", got.Room.Status)
		s.Require().NotNil(got.Guest)
		s.Require().NotNil(got.Guest.FullName)
		s.Equal("Alice Smith", *got.Guest.FullName)
	})

	s.Run("missing reservation resolves to null", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil).Times(1)

		w, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservation(id: 99) { id } }`, nil)

		s.Equal(http.StatusOK, w.Code)
		s.Empty(resp.Errors)
		s.Equal("null", string(resp.Data["reservation"]))
	})

	s.Run("query failure maps to a generic message", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(nil, errors.New("connection reset")).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservation(id: 1) { id } }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("internal server error", resp.Errors[0].Message)
	})
}

func (s *GraphHandlerTestSuite) TestReservationListQueries() {
	s.Run("reservations returns all records without projections", func() {
		first := builder.NewReservationBuilder()
		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = 2
		})

		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ReservationView{first.BuildView(), second.BuildView()}, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservations { id room { id } guest { id } } }`, nil)

		s.Empty(resp.Errors)
		var got []reservationJSON
		s.decodeField(resp, "reservations", &got)
		s.Require().Len(got, 2)
		s.Equal(int64(1), got[0].ID)
		s.Equal(int64(2), got[1].ID)
		s.Nil(got[0].Room)
		s.Nil(got[0].Guest)
	})

	s.Run("reservationsByGuest forwards the guest filter", func() {
		b := builder.NewReservationBuilder()

		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), b.GuestID).
			Return([]*queries.ReservationView{b.BuildView()}, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservationsByGuest(guestId: 10) { id guestId } }`, nil)

		s.Empty(resp.Errors)
		var got []reservationJSON
		s.decodeField(resp, "reservationsByGuest", &got)
		s.Require().Len(got, 1)
		s.Equal(b.GuestID, got[0].GuestID)
	})

	s.Run("reservationsByRoom forwards the room filter", func() {
		b := builder.NewReservationBuilder()

		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), b.RoomID).
			Return([]*queries.ReservationView{b.BuildView()}, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`{ reservationsByRoom(roomId: 100) { id roomId } }`, nil)

		s.Empty(resp.Errors)
		var got []reservationJSON
		s.decodeField(resp, "reservationsByRoom", &got)
		s.Require().Len(got, 1)
		s.Equal(b.RoomID, got[0].RoomID)
	})
}

// ================================================================================
// Mutations
// ================================================================================

func (s *GraphHandlerTestSuite) TestCreateReservation() {
	s.Run("success with explicit status", func() {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusReserved
		})

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input commands.CreateReservationInput) (*queries.ReservationView, error) {
				s.Equal(b.GuestID, input.GuestID)
				s.Equal(b.RoomID, input.RoomID)
				s.Equal(reservation.StatusReserved, input.Status)
				s.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), input.CheckInDate)
				return b.BuildView(), nil
			}).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { createReservation(guestId: 10, roomId: 100, checkInDate: "2026-09-01", checkOutDate: "2026-09-04", status: "reserved") { id status } }`, nil)

		s.Empty(resp.Errors)
		var got reservationJSON
		s.decodeField(resp, "createReservation", &got)
		s.Equal("reserved", got.Status)
	})

	s.Run("omitted status defaults to confirmed", func() {
		b := builder.NewReservationBuilder()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input commands.CreateReservationInput) (*queries.ReservationView, error) {
				s.Equal(reservation.StatusConfirmed, input.Status)
				return b.BuildView(), nil
			}).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { createReservation(guestId: 10, roomId: 100, checkInDate: "2026-09-01", checkOutDate: "2026-09-04") { id status } }`, nil)

		s.Empty(resp.Errors)
		var got reservationJSON
		s.decodeField(resp, "createReservation", &got)
		s.Equal("confirmed", got.Status)
	})

	s.Run("unavailable room surfaces the room-specific message", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoomNotAvailable).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { createReservation(guestId: 10, roomId: 5, checkInDate: "2026-09-01", checkOutDate: "2026-09-04") { id } }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("Room 5 is not available", resp.Errors[0].Message)
	})

	s.Run("room service outage surfaces as unavailable", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoomLookupFailed).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { createReservation(guestId: 10, roomId: 5, checkInDate: "2026-09-01", checkOutDate: "2026-09-04") { id } }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("room service is unavailable", resp.Errors[0].Message)
	})
}

func (s *GraphHandlerTestSuite) TestUpdateReservation() {
	s.Run("partial update forwards only the provided fields", func() {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCheckedOut
		})

		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, p reservation.Patch) (*queries.ReservationView, error) {
				s.Require().NotNil(p.Status)
				s.Equal(reservation.StatusCheckedOut, *p.Status)
				s.Nil(p.GuestID)
				s.Nil(p.RoomID)
				s.Nil(p.CheckInDate)
				s.Nil(p.CheckOutDate)
				return b.BuildView(), nil
			}).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { updateReservation(id: 1, status: "checked-out") { id status } }`, nil)

		s.Empty(resp.Errors)
		var got reservationJSON
		s.decodeField(resp, "updateReservation", &got)
		s.Equal("checked-out", got.Status)
	})

	s.Run("missing reservation resolves to null", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { updateReservation(id: 99, status: "reserved") { id } }`, nil)

		s.Empty(resp.Errors)
		s.Equal("null", string(resp.Data["updateReservation"]))
	})

	s.Run("unavailable target room names the requested room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, commands.ErrRoomNotAvailable).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { updateReservation(id: 1, roomId: 7) { id } }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("Room 7 is not available", resp.Errors[0].Message)
	})
}

func (s *GraphHandlerTestSuite) TestDeleteReservation() {
	s.Run("returns true when the reservation existed", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { deleteReservation(id: 1) }`, nil)

		s.Empty(resp.Errors)
		s.Equal("true", string(resp.Data["deleteReservation"]))
	})

	s.Run("returns false when nothing was deleted", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(99)).Return(false, nil).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { deleteReservation(id: 99) }`, nil)

		s.Empty(resp.Errors)
		s.Equal("false", string(resp.Data["deleteReservation"]))
	})

	s.Run("room status failure reports the same message as other mutations", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).
			Return(false, commands.ErrRoomSyncFailed).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { deleteReservation(id: 1) }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("room status update failed", resp.Errors[0].Message)
	})

	s.Run("delete failure maps to a generic message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).
			Return(false, errors.New("connection reset")).Times(1)

		_, resp := httptest.PerformGraphQL(s.T(), s.router,
			`mutation { deleteReservation(id: 1) }`, nil)

		s.Require().NotEmpty(resp.Errors)
		s.Equal("internal server error", resp.Errors[0].Message)
	})
}
