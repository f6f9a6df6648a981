package models

type UserRole string
type ApplicationStatus string

const (
	// Первая фаза: регистрация только студентов.
	// organization зарезервирована под вторую фазу (кабинет организаций).
	UserRoleStudent      UserRole = "student"
	UserRoleOrganization UserRole = "organization"

	// Статус заявки фиксируется при создании и в этой фазе не переводится
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)
