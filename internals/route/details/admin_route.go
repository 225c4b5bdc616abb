package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "edusaber_backend/internals/features/academics/courses/controller"
	teacherController "edusaber_backend/internals/features/academics/teachers/controller"
	licenseController "edusaber_backend/internals/features/licenses/controller"
	userController "edusaber_backend/internals/features/users/users/controller"
)

// AdminRoutes registra las rutas de administradores y superiores (/api/a).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	r.Get("/users", users.GetUsers)
	r.Get("/users/:id", users.GetUserByID)
	r.Post("/users", users.CreateUser)
	r.Patch("/users/:id", users.UpdateUser)

	teachers := teacherController.NewTeacherController(db)
	r.Get("/teachers/:id", teachers.GetTeacherByID)

	courses := courseController.NewCourseController(db)
	r.Post("/courses", courses.CreateCourse)
	r.Patch("/courses/:id", courses.UpdateCourse)
	r.Delete("/courses/:id", courses.DeleteCourse)

	licenses := licenseController.NewLicenseController(db)
	r.Get("/teacher-licenses", licenses.GetLicenses)
	r.Patch("/teacher-licenses/:id/activate", licenses.ActivateLicense)
}

// SuperAdminRoutes registra las rutas exclusivas del super administrador (/api/sa).
func SuperAdminRoutes(r fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	r.Delete("/users/:id", users.DeleteUser)
}
