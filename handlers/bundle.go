package handlers

import (
	userRepoPkg "trackcare/database/repository/user"
	activitySvc "trackcare/services/activity"
	adminSvc "trackcare/services/admin"
	bookingSvc "trackcare/services/booking"
	paymentSvc "trackcare/services/payment"
	screeningSvc "trackcare/services/screening"
	therapistSvc "trackcare/services/therapist"
	userSvc "trackcare/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	Signup  gin.HandlerFunc
	Signin  gin.HandlerFunc
	Logout  gin.HandlerFunc
	Session gin.HandlerFunc

	// Therapist directory endpoints
	ListTherapists          gin.HandlerFunc
	GetTherapist            gin.HandlerFunc
	TherapistSlots          gin.HandlerFunc
	UpdateTherapistSettings gin.HandlerFunc

	// Booking dialog endpoints
	OpenBookingSession  gin.HandlerFunc
	GetBookingSession   gin.HandlerFunc
	SelectDate          gin.HandlerFunc
	SelectTime          gin.HandlerFunc
	ConfirmSession      gin.HandlerFunc
	CloseBookingSession gin.HandlerFunc

	// Booking endpoints
	CreateBooking     gin.HandlerFunc
	MyBookings        gin.HandlerFunc
	RescheduleBooking gin.HandlerFunc
	CancelBooking     gin.HandlerFunc

	// Activity endpoints
	SaveActivity    gin.HandlerFunc
	ActivityHistory gin.HandlerFunc
	ActivitySummary gin.HandlerFunc

	// Screening endpoints
	SubmitScreening  gin.HandlerFunc
	ScreeningHistory gin.HandlerFunc
	RecentScreenings gin.HandlerFunc

	// Application endpoints
	ApplyTherapist     gin.HandlerFunc
	MyApplication      gin.HandlerFunc
	ListApplications   gin.HandlerFunc
	ApplicationDetails gin.HandlerFunc
	ApproveApplication gin.HandlerFunc
	RejectApplication  gin.HandlerFunc

	// Payment endpoints
	CreateDeposit gin.HandlerFunc
}

// Services collects everything the bundle needs.
type Services struct {
	UserRepo  userRepoPkg.UserRepository
	Users     *userSvc.Service
	Therapist *therapistSvc.Service
	Slots     bookingSvc.SlotSource
	Sessions  *bookingSvc.SessionService
	Bookings  *bookingSvc.Service
	Activity  *activitySvc.Service
	Screening *screeningSvc.Service
	Admin     *adminSvc.Service
	Payments  *paymentSvc.Service
}

// NewHandlerBundle wires the services into route handlers.
func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: s.UserRepo,

		Signup:  SignupHandler(s.Users),
		Signin:  SigninHandler(s.Users),
		Logout:  LogoutHandler(s.Users),
		Session: SessionHandler(s.Users),

		ListTherapists:          ListTherapistsHandler(s.Therapist),
		GetTherapist:            GetTherapistHandler(s.Therapist),
		TherapistSlots:          TherapistSlotsHandler(s.Slots),
		UpdateTherapistSettings: UpdateTherapistSettingsHandler(s.Therapist),

		OpenBookingSession:  OpenSessionHandler(s.Sessions),
		GetBookingSession:   GetSessionHandler(s.Sessions),
		SelectDate:          SelectDateHandler(s.Sessions),
		SelectTime:          SelectTimeHandler(s.Sessions),
		ConfirmSession:      ConfirmSessionHandler(s.Sessions),
		CloseBookingSession: CloseSessionHandler(s.Sessions),

		CreateBooking:     CreateBookingHandler(s.Bookings),
		MyBookings:        MyBookingsHandler(s.Bookings),
		RescheduleBooking: RescheduleBookingHandler(s.Bookings),
		CancelBooking:     CancelBookingHandler(s.Bookings),

		SaveActivity:    SaveActivityHandler(s.Activity),
		ActivityHistory: ActivityHistoryHandler(s.Activity),
		ActivitySummary: ActivitySummaryHandler(s.Activity),

		SubmitScreening:  SubmitScreeningHandler(s.Screening),
		ScreeningHistory: ScreeningHistoryHandler(s.Screening),
		RecentScreenings: RecentScreeningsHandler(s.Screening),

		ApplyTherapist:     ApplyTherapistHandler(s.Admin),
		MyApplication:      MyApplicationHandler(s.Admin),
		ListApplications:   ListApplicationsHandler(s.Admin),
		ApplicationDetails: ApplicationDetailsHandler(s.Admin),
		ApproveApplication: ApproveApplicationHandler(s.Admin),
		RejectApplication:  RejectApplicationHandler(s.Admin),

		CreateDeposit: CreateDepositHandler(s.Payments),
	}
}
