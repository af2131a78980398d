package models

// MemberRole represents the role of a member within a club
type MemberRole string

const (
	MemberRoleLeader MemberRole = "LEADER"
	MemberRoleMember MemberRole = "MEMBER"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleLeader, MemberRoleMember:
		return true
	}
	return false
}

// AttendanceStatus represents a member's attendance status for a meeting
type AttendanceStatus string

const (
	AttendanceStatusAttending    AttendanceStatus = "ATTENDING"
	AttendanceStatusNotAttending AttendanceStatus = "NOT_ATTENDING"
	AttendanceStatusUndecided    AttendanceStatus = "UNDECIDED"
)

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusAttending, AttendanceStatusNotAttending, AttendanceStatusUndecided:
		return true
	}
	return false
}
