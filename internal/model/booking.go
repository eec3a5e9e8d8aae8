package model

// BookingRequest is the payload of the "book a session" form.
// parentEmail is optional and only format-checked when present.
type BookingRequest struct {
	ParentName   string `json:"parentName" binding:"notblank"`
	ParentPhone  string `json:"parentPhone" binding:"required,phone"`
	ParentEmail  string `json:"parentEmail,omitempty" binding:"omitempty,loose_email"`
	StudentName  string `json:"studentName" binding:"notblank"`
	StudentGrade string `json:"studentGrade" binding:"notblank"`
}

// Booking is a booking record as listed by the admin API.
type Booking struct {
	ID           int    `json:"id"`
	ParentName   string `json:"parent_name"`
	ParentPhone  string `json:"parent_phone"`
	ParentEmail  string `json:"parent_email"`
	StudentName  string `json:"student_name"`
	StudentGrade string `json:"student_grade"`
	CreatedAt    string `json:"created_at"`
}

// DisplayDate renders CreatedAt the way the dashboard shows it.
func (b Booking) DisplayDate() string {
	return displayDate(b.CreatedAt)
}
