package model

type Specialty struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessStep struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StaffMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

type Testimonial struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Achievement string `json:"achievement"`
	Quote       string `json:"quote"`
}

type Article struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	ReadMinutes int    `json:"read_minutes"`
}

type AppNotification struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
	When    string `json:"when"`
}

type ClinicInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// StaffPage is the visible slice of the staff carousel.
type StaffPage struct {
	Index    int           `json:"index"`
	MaxIndex int           `json:"max_index"`
	Visible  []StaffMember `json:"visible"`
	HasPrev  bool          `json:"has_prev"`
	HasNext  bool          `json:"has_next"`
}

// TestimonialPage is one slide of the testimonial slider.
type TestimonialPage struct {
	Index       int         `json:"index"`
	Total       int         `json:"total"`
	Prev        int         `json:"prev"`
	Next        int         `json:"next"`
	Testimonial Testimonial `json:"testimonial"`
}
