package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/model"
)

func TestRenderBookings(t *testing.T) {
	snap := dashboard.Snapshot{
		Active: dashboard.TabBookings,
		Tabs:   map[dashboard.Tab]dashboard.TabState{dashboard.TabBookings: {Status: dashboard.StatusLoaded}},
		Bookings: []model.Booking{
			{ID: 7, ParentName: "Amina", ParentPhone: "0712345678", StudentName: "Zawadi", StudentGrade: "Form 2", CreatedAt: "2025-03-01T09:00:00Z"},
		},
	}

	var buf bytes.Buffer
	render(&buf, snap)

	out := buf.String()
	assert.Contains(t, out, "BOOKINGS")
	assert.Contains(t, out, "Amina")
	assert.Contains(t, out, "Mar 1, 2025")
}

func TestRenderTabError(t *testing.T) {
	snap := dashboard.Snapshot{
		Active: dashboard.TabFeedback,
		Tabs:   map[dashboard.Tab]dashboard.TabState{dashboard.TabFeedback: {Status: dashboard.StatusError, Error: "Request failed"}},
	}

	var buf bytes.Buffer
	render(&buf, snap)
	assert.Contains(t, buf.String(), "Error: Request failed")
}
