package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/controllers"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	teacherController *controllers.TeacherController,
	departmentController *controllers.DepartmentController,
	subjectController *controllers.SubjectController,
	holidayController *controllers.HolidayController,
	feeController *controllers.FeeController,
	eventController *controllers.EventController,
	notificationController *controllers.NotificationController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// The notification mutations are POST-only; a wrong verb must be refused,
	// not routed. HandleMethodNotAllowed plus the NoMethod handler below turn
	// those requests into a 403.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Method not allowed")
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/profile", authController.Profile)
		authenticated.GET("/dashboard", dashboardController.Dashboard)

		// Teachers: everyone reads, admins and teachers mutate
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.GET("/:id", teacherController.GetTeacher)

			teachersStaff := teachers.Group("")
			teachersStaff.Use(authMiddleware.RoleRequired(middleware.StaffOnly))
			{
				teachersStaff.POST("", teacherController.CreateTeacher)
				teachersStaff.PUT("/:id", teacherController.UpdateTeacher)
				teachersStaff.DELETE("/:id", teacherController.DeleteTeacher)
			}
		}

		// Departments: everyone reads, admins mutate. Denied mutators get the
		// softer warning-plus-redirect back to the list.
		departments := authenticated.Group("/departments")
		{
			departments.GET("", departmentController.ListDepartments)
			departments.GET("/:id", departmentController.GetDepartment)

			departmentsAdmin := departments.Group("")
			departmentsAdmin.Use(authMiddleware.RoleRequired(middleware.AdminOnly,
				middleware.WithRedirect("/api/v1/departments")))
			{
				departmentsAdmin.POST("", departmentController.CreateDepartment)
				departmentsAdmin.PUT("/:id", departmentController.UpdateDepartment)
				departmentsAdmin.DELETE("/:id", departmentController.DeleteDepartment)
			}
		}

		// Subjects: everyone reads, admins and teachers mutate
		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.ListSubjects)
			subjects.GET("/:id", subjectController.GetSubject)

			subjectsStaff := subjects.Group("")
			subjectsStaff.Use(authMiddleware.RoleRequired(middleware.StaffOnly))
			{
				subjectsStaff.POST("", subjectController.CreateSubject)
				subjectsStaff.PUT("/:id", subjectController.UpdateSubject)
				subjectsStaff.DELETE("/:id", subjectController.DeleteSubject)
			}
		}

		// Holidays: everyone reads the calendar, admins mutate
		holidays := authenticated.Group("/holidays")
		{
			holidays.GET("", holidayController.ListHolidays)
			holidays.GET("/:id", holidayController.GetHoliday)

			holidaysAdmin := holidays.Group("")
			holidaysAdmin.Use(authMiddleware.RoleRequired(middleware.AdminOnly,
				middleware.WithRedirect("/api/v1/holidays")))
			{
				holidaysAdmin.POST("", holidayController.CreateHoliday)
				holidaysAdmin.PUT("/:id", holidayController.UpdateHoliday)
				holidaysAdmin.DELETE("/:id", holidayController.DeleteHoliday)
			}
		}

		// Fees: admins and students read (the service scopes students to
		// their own rows), admins mutate
		fees := authenticated.Group("/fees")
		{
			fees.GET("", feeController.ListFees)
			fees.GET("/:id", feeController.GetFee)

			feesAdmin := fees.Group("")
			feesAdmin.Use(authMiddleware.RoleRequired(middleware.AdminOnly))
			{
				feesAdmin.POST("", feeController.CreateFee)
				feesAdmin.PUT("/:id", feeController.UpdateFee)
				feesAdmin.DELETE("/:id", feeController.DeleteFee)
			}
		}

		// Events: everyone reads, admins mutate
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)

			eventsAdmin := events.Group("")
			eventsAdmin.Use(authMiddleware.RoleRequired(middleware.AdminOnly))
			{
				eventsAdmin.POST("", eventController.CreateEvent)
			}
		}

		// Notifications: feed plus the POST-only bulk mutations
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.POST("/mark-all-read", notificationController.MarkAllRead)
			notifications.POST("/clear-all", notificationController.ClearAll)
		}

		// Messages: each user's own inbox
		messages := authenticated.Group("/messages")
		{
			messages.GET("", messageController.Inbox)
			messages.POST("", messageController.SendMessage)
			messages.POST("/:id/read", messageController.MarkMessageRead)
			messages.POST("/:id/star", messageController.ToggleMessageStar)
		}
	}
}
