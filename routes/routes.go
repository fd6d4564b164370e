package routes

import (
	"fitclub-backend/config"
	"fitclub-backend/controllers"
	"fitclub-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(config.PerformanceLogger())

	members := controllers.NewMemberController(services.NewMemberService(db))
	trainers := controllers.NewTrainerController(services.NewTrainerService(db))
	sessions := controllers.NewSessionController(services.NewSchedulerService(db))
	facility := services.NewFacilityService(db)
	rooms := controllers.NewRoomController(facility)
	staff := controllers.NewStaffController(facility)
	dashboard := controllers.NewDashboardController(facility)
	maintenance := controllers.NewMaintenanceController(services.NewMaintenanceService(db))
	invoices := controllers.NewInvoiceController(services.NewBillingService(db))

	api := r.Group("/api")
	{
		// Member routes
		m := api.Group("/members")
		{
			m.POST("", members.Register)
			m.GET("", members.Search)
			m.GET("/:id", members.Get)
			m.PUT("/:id", members.UpdateProfile)
			m.POST("/:id/goals", members.AddGoal)
			m.POST("/:id/metrics", members.LogMetric)
			m.GET("/:id/history", members.History)
			m.GET("/:id/invoices", invoices.ListForMember)
		}

		// Trainer routes
		t := api.Group("/trainers")
		{
			t.POST("", trainers.Create)
			t.GET("", trainers.List)
			t.GET("/:id", trainers.Get)
			t.POST("/:id/availability", trainers.SetAvailability)
			t.GET("/:id/availability", trainers.GetAvailability)
			t.GET("/:id/schedule", trainers.GetSchedule)
		}

		// Session booking routes
		s := api.Group("/sessions")
		{
			s.POST("", sessions.Schedule)
			s.PUT("/:id/reschedule", sessions.Reschedule)
			s.PUT("/:id/room", sessions.AssignRoom)
			s.DELETE("/:id", sessions.Cancel)
		}

		// Room routes
		rm := api.Group("/rooms")
		{
			rm.POST("", rooms.Create)
			rm.GET("", rooms.List)
			rm.GET("/occupancy", rooms.Occupancy)
			rm.DELETE("/:id", rooms.Delete)
		}

		// Maintenance routes
		mt := api.Group("/maintenance")
		{
			mt.POST("", maintenance.Report)
			mt.GET("", maintenance.List)
			mt.PUT("/:id/status", maintenance.UpdateStatus)
		}

		// Invoice routes
		inv := api.Group("/invoices")
		{
			inv.POST("", invoices.Create)
			inv.GET("/:id", invoices.Get)
			inv.POST("/:id/payments", invoices.RecordPayment)
		}

		// Staff routes
		st := api.Group("/staff")
		{
			st.POST("", staff.Create)
			st.GET("", staff.List)
		}

		api.GET("/dashboard", dashboard.Overview)
		api.GET("/dashboard/members/:id", dashboard.MemberSummary)
		api.GET("/dashboard/trainers/:id/schedule", dashboard.TrainerSchedule)
	}

	return r
}
