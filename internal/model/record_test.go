package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordKind(t *testing.T) {
	for _, k := range RecordKinds {
		got, err := ParseRecordKind(string(k))
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseRecordKind("students")
	assert.Error(t, err)
}

func TestRecordKindSingular(t *testing.T) {
	assert.Equal(t, "subscription", KindSubscriptions.Singular())
	assert.Equal(t, "booking", KindBookings.Singular())
	assert.Equal(t, "feedback", KindFeedback.Singular())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2025", Booking{CreatedAt: "2025-03-05T10:20:30.000Z"}.DisplayDate())
	assert.Equal(t, "Mar 5, 2025", Subscription{CreatedAt: "2025-03-05 10:20:30"}.DisplayDate())
	assert.Equal(t, "yesterday", Feedback{SubmittedAt: "yesterday"}.DisplayDate())
}

func TestFeedbackWithDefaults(t *testing.T) {
	assert.Equal(t, FeedbackRoleStudent, FeedbackRequest{}.WithDefaults().Role)
	assert.Equal(t, FeedbackRoleParent, FeedbackRequest{Role: FeedbackRoleParent}.WithDefaults().Role)
}
