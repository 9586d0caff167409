package model

import "time"

// Career levels and job types a member can set on their profile.
const (
	CareerLevelJunior   = "junior"
	CareerLevelMidLevel = "midlevel"
	CareerLevelSenior   = "senior"

	JobTypeBackend  = "backend"
	JobTypeFrontend = "frontend"
	JobTypeMobile   = "mobile"
	JobTypeEtc      = "etc"
)

// Member is created on first login. GitHubID is the stable external identity;
// CareerLevel and JobType stay nil until the member fills in their profile.
type Member struct {
	BaseModel
	GitHubID    string    `db:"github_id" json:"gitHubId"`
	Name        string    `db:"name" json:"name"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	CareerLevel *string   `db:"career_level" json:"careerLevel"`
	JobType     *string   `db:"job_type" json:"jobType"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

func ValidCareerLevel(v string) bool {
	switch v {
	case CareerLevelJunior, CareerLevelMidLevel, CareerLevelSenior:
		return true
	}
	return false
}

func ValidJobType(v string) bool {
	switch v {
	case JobTypeBackend, JobTypeFrontend, JobTypeMobile, JobTypeEtc:
		return true
	}
	return false
}
