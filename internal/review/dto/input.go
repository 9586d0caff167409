package dto

type SubmitReviewInput struct {
	MemberID  string
	ProductID string
	Content   *string
	Rating    int
}
