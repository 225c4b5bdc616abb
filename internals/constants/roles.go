package constants

import "fmt"

// Roles del sistema
const (
	RoleEstudiante         = "estudiante"
	RoleDocente            = "docente"
	RoleAdministrador      = "administrador"
	RoleSuperAdministrador = "super_administrador"
)

// Mensajes comunes
const (
	MsgCuentaDesactivada   = "Tu cuenta ha sido desactivada. Contacta al administrador."
	MsgNoAutorizado        = "No autorizado"
	MsgUsuarioNoEncontrado = "Usuario no encontrado"
)

// Plantillas de mensajes de error por rol
const (
	ErrOnlyTeachersCanAccess = "❌ Solo docentes o administradores pueden acceder a %s."
	ErrOnlyAdminsCanAccess   = "❌ Solo administradores pueden acceder a %s."
	ErrOnlySuperAdminAccess  = "❌ Solo el super administrador puede acceder a %s."
)

func RoleErrorDocente(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleEstudiante,
		RoleDocente,
		RoleAdministrador,
		RoleSuperAdministrador,
	}

	DocenteAndAbove = []string{
		RoleDocente,
		RoleAdministrador,
		RoleSuperAdministrador,
	}

	AdminAndAbove = []string{
		RoleAdministrador,
		RoleSuperAdministrador,
	}

	SuperAdminOnly = []string{
		RoleSuperAdministrador,
	}
)
