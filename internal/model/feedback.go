package model

// FeedbackRole identifies who is sharing an experience.
type FeedbackRole string

const (
	FeedbackRoleStudent FeedbackRole = "student"
	FeedbackRoleParent  FeedbackRole = "parent"
	FeedbackRoleOther   FeedbackRole = "other"
)

// FeedbackRoles lists the accepted roles in display order.
var FeedbackRoles = []FeedbackRole{FeedbackRoleStudent, FeedbackRoleParent, FeedbackRoleOther}

// FeedbackRequest is the "share your experience" payload. Rating has no
// default: zero means the visitor has not picked one yet.
type FeedbackRequest struct {
	Name    string       `json:"name" binding:"notblank"`
	Role    FeedbackRole `json:"role" binding:"omitempty,oneof=student parent other"`
	Rating  int          `json:"rating" binding:"required,min=1,max=5"`
	Comment string       `json:"comment" binding:"notblank"`
}

// WithDefaults returns a copy with an empty role replaced by "student".
func (r FeedbackRequest) WithDefaults() FeedbackRequest {
	if r.Role == "" {
		r.Role = FeedbackRoleStudent
	}
	return r
}

// Feedback is a testimonial record as listed by the admin API.
type Feedback struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Role        FeedbackRole `json:"role"`
	Rating      int          `json:"rating"`
	Comment     string       `json:"comment"`
	SubmittedAt string       `json:"submitted_at"`
}

// DisplayDate renders SubmittedAt the way the dashboard shows it.
func (f Feedback) DisplayDate() string {
	return displayDate(f.SubmittedAt)
}
