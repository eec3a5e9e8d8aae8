package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jala-youth/jala-web/internal/dashboard"
)

// render prints the active tab of snap.
func render(out io.Writer, snap dashboard.Snapshot) {
	ts := snap.Tabs[snap.Active]
	fmt.Fprintf(out, "\n── %s ──\n", strings.ToUpper(string(snap.Active)))
	switch ts.Status {
	case dashboard.StatusLoading:
		fmt.Fprintln(out, "Loading...")
		return
	case dashboard.StatusError:
		fmt.Fprintf(out, "Error: %s\n", ts.Error)
		return
	case dashboard.StatusIdle:
		fmt.Fprintln(out, "Not loaded yet.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch snap.Active {
	case dashboard.TabOverview:
		s := snap.Stats
		if s == nil {
			return
		}
		fmt.Fprintf(w, "Subscriptions\t%d\t(+%d this week)\n", s.TotalSubscriptions, s.RecentActivity.Subscriptions)
		fmt.Fprintf(w, "Bookings\t%d\t(+%d this week)\n", s.TotalBookings, s.RecentActivity.Bookings)
		fmt.Fprintf(w, "Feedback\t%d\t(+%d this week)\n", s.TotalFeedback, s.RecentActivity.Feedback)
		fmt.Fprintf(w, "Average rating\t%.1f\t\n", s.AverageRating)
	case dashboard.TabSubscriptions:
		fmt.Fprintln(w, "ID\tEMAIL\tDATE")
		for _, r := range snap.Subscriptions {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.EmailAddress, r.DisplayDate())
		}
	case dashboard.TabBookings:
		fmt.Fprintln(w, "ID\tPARENT\tPHONE\tEMAIL\tSTUDENT\tGRADE\tDATE")
		for _, r := range snap.Bookings {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.ParentName, r.ParentPhone, r.ParentEmail, r.StudentName, r.StudentGrade, r.DisplayDate())
		}
	case dashboard.TabFeedback:
		fmt.Fprintln(w, "ID\tNAME\tROLE\tRATING\tCOMMENT\tDATE")
		for _, r := range snap.Feedback {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Role, strings.Repeat("*", r.Rating), r.Comment, r.DisplayDate())
		}
	}
}
