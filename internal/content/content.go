// Package content holds the static copy of the public site.
package content

import "github.com/jala-youth/jala-web/internal/model"

// NavLink is one entry of the main navigation.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Value is one of the organisation's core values.
type Value struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Program is a group of activities offered to students.
type Program struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// Site is everything the public pages render besides the forms.
type Site struct {
	Navigation    []NavLink            `json:"navigation"`
	CoreValues    []Value              `json:"core_values"`
	Programs      []Program            `json:"programs"`
	FeedbackRoles []model.FeedbackRole `json:"feedback_roles"`
}

var navigation = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "About Us", Path: "/about"},
	{Label: "Our Programs", Path: "/programs"},
	{Label: "Get Involved", Path: "/get-involved"},
}

var coreValues = []Value{
	{Icon: "lightbulb", Title: "Innovation", Description: "Fostering creativity and embracing technology to solve challenges."},
	{Icon: "shield-check", Title: "Integrity", Description: "Upholding the highest standards of honesty and ethical behavior."},
	{Icon: "users", Title: "Collaboration", Description: "Working with partners and communities to achieve shared goals."},
	{Icon: "heart-handshake", Title: "Inclusion", Description: "Ensuring equitable access to opportunities for all youth."},
	{Icon: "leaf", Title: "Sustainability", Description: "Creating lasting impact for generations to come."},
}

var programs = []Program{
	{
		Title:       "Education & Mentorship",
		Description: "Knowledge for All",
		Items: []string{
			"Holiday Tuition Programs (September - December)",
			"JALA Mentorship Program (Connecting youth with industry professionals)",
			"Reading & Research Clubs (Fostering a culture of lifelong learning)",
			"Career Guidance & University Placement Support",
		},
	},
	{
		Title:       "Innovation, Entrepreneurship & Digital Skills",
		Description: "Skills for the Future",
		Items: []string{
			"Innovation & Entrepreneurship Hub (From idea to enterprise)",
			"Digital Skills & Tech Program (Coding, Digital Marketing, Graphic Design)",
			"STEM & Robotics Innovation Club",
			"Financial Literacy & Management Workshops",
		},
	},
	{
		Title:       "Leadership, SDGs & Community Impact",
		Description: "Values for Change",
		Items: []string{
			"Leadership & Public Speaking Academy",
			"JALA SDG Initiative (Aligning projects with Sustainable Development Goals)",
			"Community Service & Volunteerism Projects",
			"Environmental Conservation & Climate Action Programs",
		},
	},
}

// Load returns a copy of the site content; callers may modify it freely.
func Load() Site {
	site := Site{
		Navigation:    append([]NavLink(nil), navigation...),
		CoreValues:    append([]Value(nil), coreValues...),
		Programs:      make([]Program, len(programs)),
		FeedbackRoles: append([]model.FeedbackRole(nil), model.FeedbackRoles...),
	}
	for i, p := range programs {
		p.Items = append([]string(nil), p.Items...)
		site.Programs[i] = p
	}
	return site
}
