package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "edusaber_backend/internals/features/assessments/grades/controller"
	planController "edusaber_backend/internals/features/assessments/improvement_plans/controller"
	indicatorController "edusaber_backend/internals/features/assessments/indicators/controller"
	questionnaireController "edusaber_backend/internals/features/assessments/questionnaires/controller"
	attendanceController "edusaber_backend/internals/features/attendance/controller"
	messageController "edusaber_backend/internals/features/communications/messages/controller"
	resourceController "edusaber_backend/internals/features/resources/controller"
	userController "edusaber_backend/internals/features/users/users/controller"
)

// UserRoutes registra las rutas de cualquier usuario autenticado (/api/u).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	r.Get("/users/me", users.GetMe)
	r.Post("/users/me/photo", users.UploadProfilePhoto)

	questionnaires := questionnaireController.NewQuestionnaireController(db)
	r.Get("/questionnaires/:id", questionnaires.GetQuestionnaireByID)
	r.Post("/questionnaires/:id/submit", questionnaires.SubmitQuestionnaire)

	indicators := indicatorController.NewIndicatorController(db)
	r.Get("/indicators/student/:studentId", indicators.GetStudentIndicators)

	grades := gradeController.NewGradeController(db)
	r.Get("/grades/:studentId", grades.GetStudentGrades)

	plans := planController.NewImprovementPlanController(db)
	r.Get("/improvement-plans/mine", plans.GetMyPlans)
	r.Get("/improvement-plans/:id", plans.GetPlanByID)
	r.Patch("/improvement-plans/activities/:activityId/status", plans.UpdateActivityStatus)

	messages := messageController.NewMessageController(db)
	r.Post("/messages", messages.SendMessage)
	r.Get("/messages/inbox", messages.GetInbox)
	r.Get("/messages/sent", messages.GetSent)
	r.Patch("/messages/:id/read", messages.MarkAsRead)
	r.Delete("/messages/:id", messages.DeleteMessage)

	attendance := attendanceController.NewAttendanceController(db)
	r.Post("/attendance/records", attendance.RegisterScan)

	resources := resourceController.NewEducationalResourceController(db)
	r.Get("/resources", resources.GetResources)
	r.Get("/resources/:id", resources.GetResourceByID)
}
