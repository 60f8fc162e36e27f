package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	TeacherRepository      *TeacherRepository
	DepartmentRepository   *DepartmentRepository
	SubjectRepository      *SubjectRepository
	HolidayRepository      *HolidayRepository
	FeeRepository          *FeeRepository
	EventRepository        *EventRepository
	NotificationRepository *NotificationRepository
	MessageRepository      *MessageRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		HolidayRepository:      NewHolidayRepository(db),
		FeeRepository:          NewFeeRepository(db),
		EventRepository:        NewEventRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		MessageRepository:      NewMessageRepository(db),
	}
}
