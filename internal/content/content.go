package content

import (
	"errors"

	"cemdon/pkg/model"
)

// VisibleStaff is how many staff cards the carousel shows at once.
const VisibleStaff = 3

var ErrNoTestimonials = errors.New("no testimonials")

// Catalog exposes the site content. The zero value is not usable; call
// NewCatalog.
type Catalog struct {
	specialties   []model.Specialty
	processSteps  []model.ProcessStep
	staff         []model.StaffMember
	testimonials  []model.Testimonial
	articles      []model.Article
	notifications []model.AppNotification
	clinic        model.ClinicInfo
}

func NewCatalog() *Catalog {
	return &Catalog{
		specialties:   specialties,
		processSteps:  processSteps,
		staff:         staff,
		testimonials:  testimonials,
		articles:      articles,
		notifications: notifications,
		clinic:        clinic,
	}
}

func (c *Catalog) Specialties() []model.Specialty {
	return append([]model.Specialty(nil), c.specialties...)
}

func (c *Catalog) ProcessSteps() []model.ProcessStep {
	return append([]model.ProcessStep(nil), c.processSteps...)
}

func (c *Catalog) Staff() []model.StaffMember {
	return append([]model.StaffMember(nil), c.staff...)
}

func (c *Catalog) Testimonials() []model.Testimonial {
	return append([]model.Testimonial(nil), c.testimonials...)
}

func (c *Catalog) Articles() []model.Article {
	return append([]model.Article(nil), c.articles...)
}

func (c *Catalog) Notifications() []model.AppNotification {
	return append([]model.AppNotification(nil), c.notifications...)
}

func (c *Catalog) Clinic() model.ClinicInfo {
	return c.clinic
}

// StaffPage returns the carousel window starting at index, clamped to
// [0, len-VisibleStaff].
func (c *Catalog) StaffPage(index int) model.StaffPage {
	maxIndex := len(c.staff) - VisibleStaff
	if maxIndex < 0 {
		maxIndex = 0
	}
	index = min(max(index, 0), maxIndex)

	end := min(index+VisibleStaff, len(c.staff))
	return model.StaffPage{
		Index:    index,
		MaxIndex: maxIndex,
		Visible:  append([]model.StaffMember(nil), c.staff[index:end]...),
		HasPrev:  index > 0,
		HasNext:  index < maxIndex,
	}
}

// TestimonialPage returns the slide at index modulo the number of
// testimonials; negative indexes wrap from the end.
func (c *Catalog) TestimonialPage(index int) (model.TestimonialPage, error) {
	n := len(c.testimonials)
	if n == 0 {
		return model.TestimonialPage{}, ErrNoTestimonials
	}
	index = ((index % n) + n) % n
	return model.TestimonialPage{
		Index:       index,
		Total:       n,
		Prev:        (index - 1 + n) % n,
		Next:        (index + 1) % n,
		Testimonial: c.testimonials[index],
	}, nil
}
