package services

import (
	"github.com/preskool/school/internal/app/repositories"
	"github.com/preskool/school/internal/pkg/auth"
)

// Services holds all service instances
type Services struct {
	AuthService         *AuthService
	TeacherService      *TeacherService
	DepartmentService   *DepartmentService
	SubjectService      *SubjectService
	HolidayService      *HolidayService
	FeeService          *FeeService
	EventService        *EventService
	NotificationService *NotificationService
	MessageService      *MessageService
	DashboardService    *DashboardService
}

// NewServices wires all services onto the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		TeacherService:      NewTeacherService(repos.TeacherRepository),
		DepartmentService:   NewDepartmentService(repos.DepartmentRepository, repos.SubjectRepository),
		SubjectService:      NewSubjectService(repos.SubjectRepository, repos.DepartmentRepository),
		HolidayService:      NewHolidayService(repos.HolidayRepository),
		FeeService:          NewFeeService(repos.FeeRepository, repos.UserRepository),
		EventService:        NewEventService(repos.EventRepository),
		NotificationService: notificationService,
		MessageService:      NewMessageService(repos.MessageRepository, repos.UserRepository, notificationService),
		DashboardService:    NewDashboardService(repos.UserRepository, repos.TeacherRepository),
	}
}
