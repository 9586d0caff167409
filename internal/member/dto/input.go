package dto

type UpdateProfileInput struct {
	MemberID    string
	CareerLevel string
	JobType     string
}
