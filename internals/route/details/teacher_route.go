package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "edusaber_backend/internals/features/academics/courses/controller"
	studentController "edusaber_backend/internals/features/academics/students/controller"
	teacherController "edusaber_backend/internals/features/academics/teachers/controller"
	evaluationController "edusaber_backend/internals/features/assessments/evaluation/controller"
	gradeController "edusaber_backend/internals/features/assessments/grades/controller"
	planController "edusaber_backend/internals/features/assessments/improvement_plans/controller"
	indicatorController "edusaber_backend/internals/features/assessments/indicators/controller"
	questionnaireController "edusaber_backend/internals/features/assessments/questionnaires/controller"
	attendanceController "edusaber_backend/internals/features/attendance/controller"
	licenseController "edusaber_backend/internals/features/licenses/controller"
	resourceController "edusaber_backend/internals/features/resources/controller"
)

// TeacherRoutes registra las rutas de docentes y superiores (/api/t).
func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	teachers := teacherController.NewTeacherController(db)
	r.Get("/teachers/me", teachers.GetMyProfile)
	r.Patch("/teachers/me", teachers.UpdateMyProfile)
	r.Post("/teachers/me/logo", teachers.UploadReportLogo)

	students := studentController.NewStudentController(db)
	r.Post("/students", students.CreateStudent)
	r.Get("/students/teacher/:teacherId", students.GetStudentsByTeacher)
	r.Get("/students/:id", students.GetStudentByID)
	r.Post("/students/assign", students.AssignStudent)
	r.Patch("/students/:id", students.UpdateStudent)
	r.Delete("/students/:id", students.DeleteStudent)

	courses := courseController.NewCourseController(db)
	r.Get("/courses", courses.GetCourses)
	r.Get("/courses/:id", courses.GetCourseByID)
	r.Get("/courses/:id/students", courses.GetCourseStudents)

	questionnaires := questionnaireController.NewQuestionnaireController(db)
	r.Post("/questionnaires", questionnaires.CreateQuestionnaire)
	r.Get("/questionnaires", questionnaires.GetQuestionnaires)
	r.Get("/questionnaires/:id", questionnaires.GetQuestionnaireByID)
	r.Patch("/questionnaires/:id", questionnaires.UpdateQuestionnaire)
	r.Delete("/questionnaires/:id", questionnaires.DeleteQuestionnaire)

	indicators := indicatorController.NewIndicatorController(db)
	r.Post("/indicators", indicators.CreateIndicator)
	r.Get("/indicators", indicators.GetIndicators)
	r.Get("/indicators/student/:studentId", indicators.GetStudentIndicators)
	r.Patch("/indicators/:id", indicators.UpdateIndicator)
	r.Delete("/indicators/:id", indicators.DeleteIndicator)

	evaluation := evaluationController.NewEvaluationController(db)
	r.Post("/indicator-evaluation/evaluate/:studentId/:questionnaireId", evaluation.EvaluateStudent)
	r.Post("/indicator-evaluation/evaluate-questionnaire/:questionnaireId", evaluation.EvaluateQuestionnaire)

	plans := planController.NewImprovementPlanController(db)
	r.Post("/improvement-plans/process/:questionnaireId", plans.ProcessQuestionnaire)
	r.Post("/improvement-plans/process/:questionnaireId/student/:studentId", plans.ProcessStudent)
	r.Get("/improvement-plans", plans.GetPlans)
	r.Get("/improvement-plans/:id", plans.GetPlanByID)
	r.Patch("/improvement-plans/:id", plans.UpdatePlan)
	r.Delete("/improvement-plans/:id", plans.DeletePlan)

	grades := gradeController.NewGradeController(db)
	r.Post("/grades/recalculate/:studentId", grades.RecalculateStudent)
	r.Get("/grades/:studentId", grades.GetStudentGrades)
	r.Put("/grades/override/:studentId/:phase", grades.SetManualOverride)

	attendance := attendanceController.NewAttendanceController(db)
	r.Post("/attendance/sessions", attendance.CreateSession)
	r.Get("/attendance/sessions", attendance.GetSessions)
	r.Get("/attendance/sessions/:id/qr", attendance.GetSessionQR)
	r.Get("/attendance/sessions/:id/records", attendance.GetSessionRecords)

	licenses := licenseController.NewLicenseController(db)
	r.Post("/licenses/checkout", licenses.Checkout)
	r.Get("/licenses/mine", licenses.GetMyLicenses)

	resources := resourceController.NewEducationalResourceController(db)
	r.Post("/resources", resources.CreateResource)
	r.Post("/resources/:id/file", resources.UploadResourceFile)
	r.Delete("/resources/:id", resources.DeleteResource)
}
