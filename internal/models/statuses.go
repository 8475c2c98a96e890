package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleEmployer  UserRole = "employer"
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the three workflow
// values. There is no transition graph: any status may follow any other.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleEmployer, UserRoleJobseeker, UserRoleAdmin:
		return true
	}
	return false
}
