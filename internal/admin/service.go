package admin

import (
	"context"
	"sort"
	"time"

	"CampusPortal/internal/auth"
	"CampusPortal/internal/event"
	"CampusPortal/internal/inquiry"
)

const activityFeedSize = 5

// ActivityEntry is one row in the dashboard's recent activity feed.
type ActivityEntry struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Time     time.Time `json:"time"`
	Icon     string    `json:"icon"`
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	TotalStudents    int64           `json:"totalStudents"`
	ActiveEvents     int64           `json:"activeEvents"`
	PendingInquiries int64           `json:"pendingInquiries"`
	RecentActivity   []ActivityEntry `json:"recentActivity"`
}

// AdminService aggregates counts and recent activity across collections.
type AdminService struct {
	users     auth.UserRepository
	events    event.EventRepository
	inquiries inquiry.InquiryRepository
}

func NewAdminService(users auth.UserRepository, events event.EventRepository, inquiries inquiry.InquiryRepository) *AdminService {
	return &AdminService{users: users, events: events, inquiries: inquiries}
}

// Stats builds the dashboard: three counters plus a feed merging the five
// most recent events and five most recent inquiries by timestamp, truncated
// to five entries total.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalStudents, err := s.users.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	activeEvents, err := s.events.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingInquiries, err := s.inquiries.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	recentEvents, err := s.events.RecentWithCreator(ctx, activityFeedSize)
	if err != nil {
		return nil, err
	}
	recentInquiries, err := s.inquiries.RecentWithUser(ctx, activityFeedSize)
	if err != nil {
		return nil, err
	}

	activity := make([]ActivityEntry, 0, len(recentEvents)+len(recentInquiries))
	for _, e := range recentEvents {
		creator := "Admin"
		if e.Creator != nil {
			creator = e.Creator.Name
		}
		activity = append(activity, ActivityEntry{
			Type:     "event",
			Title:    e.Title,
			Subtitle: "Event created by " + creator,
			Time:     e.CreatedAt,
			Icon:     "event",
		})
	}
	for _, q := range recentInquiries {
		submitter := "Student"
		if q.Submitter != nil {
			submitter = q.Submitter.Name
		}
		activity = append(activity, ActivityEntry{
			Type:     "inquiry",
			Title:    q.Subject,
			Subtitle: "Inquiry from " + submitter,
			Time:     q.CreatedAt,
			Icon:     "chat",
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Time.After(activity[j].Time)
	})
	if len(activity) > activityFeedSize {
		activity = activity[:activityFeedSize]
	}

	return &DashboardStats{
		TotalStudents:    totalStudents,
		ActiveEvents:     activeEvents,
		PendingInquiries: pendingInquiries,
		RecentActivity:   activity,
	}, nil
}

// Students lists every student account, newest first.
func (s *AdminService) Students(ctx context.Context) ([]auth.User, error) {
	students, err := s.users.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []auth.User{}
	}
	return students, nil
}
