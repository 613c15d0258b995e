package meeting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/seed"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

var today = time.Date(2024, 8, 16, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc      *MeetingService
	meetings *repository.MeetingRepository
	users    map[string]*entities.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	data, err := seed.Load(seed.Options{BcryptCost: bcrypt.MinCost, Now: today})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	meetings := repository.NewMeetingRepository(data.Meetings)
	users := repository.NewUserRepository(data.Users)

	svc := NewMeetingService(meetings, users, permission.NewGate(), nil)
	svc.Now = func() time.Time { return today }
	n := 0
	svc.NewID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}

	byID := make(map[string]*entities.User, len(data.Users))
	for _, u := range data.Users {
		byID[u.ID] = u
	}
	return &fixture{svc: svc, meetings: meetings, users: byID}
}

func ids(meetings []*entities.Meeting) []string {
	out := make([]string, len(meetings))
	for i, m := range meetings {
		out[i] = m.ID
	}
	return out
}

func equalIDs(t *testing.T, label string, got []*entities.Meeting, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("%s: got %v want %v", label, g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("%s: got %v want %v", label, g, want)
		}
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    string
		filter   DashboardFilter
		upcoming []string
		past     []string
	}{
		{"all", "u1", DashboardFilter{Scope: ScopeAll}, []string{"m3", "m5"}, []string{"m1", "m2", "m4"}},
		{"my participant", "u3", DashboardFilter{Scope: ScopeMy}, []string{"m3"}, []string{"m1", "m2"}},
		{"my notulis", "u8", DashboardFilter{Scope: ScopeMy}, []string{"m3", "m5"}, []string{"m4"}},
		{"search agenda", "u1", DashboardFilter{Scope: ScopeAll, Search: "SPRINT"}, nil, []string{"m2"}},
		{"search title", "u1", DashboardFilter{Search: "titan"}, []string{"m3"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.svc.Dashboard(ctx, f.users[tt.actor], tt.filter)
			if err != nil {
				t.Fatalf("Dashboard: %v", err)
			}
			equalIDs(t, "upcoming", out.Upcoming, tt.upcoming...)
			equalIDs(t, "past", out.Past, tt.past...)
		})
	}
}

func TestDashboardMyRequiresActor(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Dashboard(context.Background(), nil, DashboardFilter{Scope: ScopeMy})
	if !errors.Is(err, usecaseErrors.ErrUnauthorized) {
		t.Fatalf("err: got %v", err)
	}
}

func TestArchive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.Archive(ctx, ArchiveFilter{})
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	equalIDs(t, "all", got, "m1", "m2", "m4")

	got, err = f.svc.Archive(ctx, ArchiveFilter{StartDate: "2024-08-01", EndDate: "2024-08-12"})
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	equalIDs(t, "range", got, "m2")

	got, err = f.svc.Archive(ctx, ArchiveFilter{Search: "campaign"})
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	equalIDs(t, "search", got, "m4")

	if _, err := f.svc.Archive(ctx, ArchiveFilter{StartDate: "15/08/2024"}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("bad date: got %v", err)
	}
}

func validInput() CreateMeetingInput {
	return CreateMeetingInput{
		Title:          "Budget Planning 2025",
		Agenda:         "Allocate next year's budget",
		Date:           "2024-09-02",
		StartTime:      "09:00",
		EndTime:        "10:30",
		Location:       "Room 4B",
		NotulisID:      "u14",
		ParticipantIDs: []string{"u1", "u3", "u3", "u20"},
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.users["u1"], validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == "" || m.Status != entities.MeetingScheduled || m.CreatedBy.ID != "u1" || m.Notulis.ID != "u14" {
		t.Fatalf("created: %+v", m)
	}
	if len(m.Participants) != 3 {
		t.Fatalf("participants should be deduplicated: got %d", len(m.Participants))
	}
	if m.Minutes != nil {
		t.Fatalf("new meetings start without minutes")
	}
	if first := f.meetings.List(ctx)[0]; first.ID != m.ID {
		t.Fatalf("new meeting should be listed first, got %s", first.ID)
	}
}

func TestCreateRejectsInvalidSelection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateMeetingInput)
		wantErr error
	}{
		{"unknown notulis", func(in *CreateMeetingInput) { in.NotulisID = "u99" }, usecaseErrors.ErrInvalidNotulis},
		{"notulis without role", func(in *CreateMeetingInput) { in.NotulisID = "u3" }, usecaseErrors.ErrInvalidNotulis},
		{"unknown participant", func(in *CreateMeetingInput) { in.ParticipantIDs = []string{"u1", "u404"} }, usecaseErrors.ErrInvalidParticipant},
		{"missing title", func(in *CreateMeetingInput) { in.Title = "  " }, usecaseErrors.ErrInvalidInput},
		{"bad time", func(in *CreateMeetingInput) { in.StartTime = "9am" }, usecaseErrors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			tt.mutate(&in)
			if _, err := f.svc.Create(ctx, f.users["u1"], in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v want %v", err, tt.wantErr)
			}
			if n := len(f.meetings.List(ctx)); n != 5 {
				t.Fatalf("store changed on rejected create: %d meetings", n)
			}
		})
	}
}

func TestGetPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Get(ctx, f.users["u3"], "m1"); err != nil {
		t.Fatalf("participant view: %v", err)
	}
	if _, err := f.svc.Get(ctx, f.users["u20"], "m1"); !errors.Is(err, usecaseErrors.ErrForbidden) {
		t.Fatalf("outsider: got %v", err)
	}
	if _, err := f.svc.Get(ctx, f.users["u1"], "m404"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("missing: got %v", err)
	}
}

func TestUpdateDetailsKeepsMinutes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := UpdateDetailsInput{CreateMeetingInput: validInput(), Status: entities.MeetingCanceled}
	if _, err := f.svc.UpdateDetails(ctx, f.users["u2"], "m1", in); !errors.Is(err, usecaseErrors.ErrForbidden) {
		t.Fatalf("notulis edit details: got %v", err)
	}

	m, err := f.svc.UpdateDetails(ctx, f.users["u1"], "m1", in)
	if err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}
	if m.Title != "Budget Planning 2025" || m.Status != entities.MeetingCanceled || m.Notulis.ID != "u14" {
		t.Fatalf("updated: %+v", m)
	}
	stored, _ := f.meetings.FindByID(ctx, "m1")
	if stored.Minutes == nil || len(stored.Minutes.ActionItems) != 3 {
		t.Fatalf("minutes lost on details update")
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Delete(ctx, f.users["u2"], "m2"); !errors.Is(err, usecaseErrors.ErrForbidden) {
		t.Fatalf("notulis delete: got %v", err)
	}
	if err := f.svc.Delete(ctx, f.users["u10"], "m2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.svc.Get(ctx, f.users["u10"], "m2"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("after delete: got %v", err)
	}
	if err := f.svc.Delete(ctx, f.users["u10"], "m2"); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestUpdateSummaryCreatesMinutes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.UpdateSummary(ctx, f.users["u3"], "m3", "x"); !errors.Is(err, usecaseErrors.ErrForbidden) {
		t.Fatalf("participant edit: got %v", err)
	}
	if _, err := f.svc.UpdateSummary(ctx, nil, "m3", "x"); !errors.Is(err, usecaseErrors.ErrUnauthorized) {
		t.Fatalf("anonymous edit: got %v", err)
	}

	if _, err := f.svc.UpdateSummary(ctx, f.users["u2"], "m3", "Kick-off went well."); err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}
	stored, _ := f.meetings.FindByID(ctx, "m3")
	if stored.Minutes == nil || stored.Minutes.Summary != "Kick-off went well." {
		t.Fatalf("summary not stored: %+v", stored.Minutes)
	}
}

func TestSaveActionItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	notulis := f.users["u2"]

	_, item, err := f.svc.SaveActionItem(ctx, notulis, "m3", ActionItemInput{
		Task: "Draft project charter", PICID: "u5", Deadline: "2024-08-30", Status: entities.ActionItemDone,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID != "gen-1" || item.Status != entities.ActionItemOpen || item.PIC.Name != "Eko Prasetyo" {
		t.Fatalf("created item: %+v", item)
	}

	_, item, err = f.svc.SaveActionItem(ctx, notulis, "m1", ActionItemInput{
		ID: "a2", Task: "Update Phoenix mockups v2", PICID: "u4", Deadline: "2024-08-28", Status: entities.ActionItemDone,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := f.meetings.FindByID(ctx, "m1")
	got := stored.Minutes.ActionItems[stored.ActionItemIndex("a2")]
	if got != *item || got.Status != entities.ActionItemDone || got.Deadline != "2024-08-28" {
		t.Fatalf("updated item: %+v", got)
	}
	if len(stored.Minutes.ActionItems) != 3 {
		t.Fatalf("update should replace in place")
	}
}

func TestSaveActionItemRejectsNonParticipantPIC(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.SaveActionItem(ctx, f.users["u2"], "m1", ActionItemInput{Task: "x", PICID: "u20"})
	if !errors.Is(err, usecaseErrors.ErrInvalidPIC) {
		t.Fatalf("err: got %v", err)
	}
	stored, _ := f.meetings.FindByID(ctx, "m1")
	if len(stored.Minutes.ActionItems) != 3 {
		t.Fatalf("rejected item was written")
	}

	_, _, err = f.svc.SaveActionItem(ctx, f.users["u2"], "m1", ActionItemInput{ID: "a404", Task: "x", PICID: "u1"})
	if !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("unknown item: got %v", err)
	}
	_, _, err = f.svc.SaveActionItem(ctx, f.users["u2"], "m1", ActionItemInput{ID: "a1", Task: "x", PICID: "u1", Status: "Closed"})
	if !errors.Is(err, usecaseErrors.ErrInvalidStatus) {
		t.Fatalf("bad status: got %v", err)
	}
}

func TestDeleteActionItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.svc.DeleteActionItem(ctx, f.users["u1"], "m1", "a2")
	if err != nil {
		t.Fatalf("DeleteActionItem: %v", err)
	}
	if m.ActionItemIndex("a2") >= 0 || len(m.Minutes.ActionItems) != 2 {
		t.Fatalf("item not removed")
	}
	if _, err := f.svc.DeleteActionItem(ctx, f.users["u1"], "m1", "a2"); !errors.Is(err, usecaseErrors.ErrActionItemNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestAttachments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, att, err := f.svc.AddAttachment(ctx, f.users["u8"], "m5", "wireframes.docx")
	if err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}
	if att.Type != entities.AttachmentDoc || att.URL != "#" || att.ID == "" {
		t.Fatalf("attachment: %+v", att)
	}
	if _, _, err := f.svc.AddAttachment(ctx, f.users["u8"], "m5", " "); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("empty name: got %v", err)
	}

	m, err := f.svc.DeleteAttachment(ctx, f.users["u8"], "m5", att.ID)
	if err != nil {
		t.Fatalf("DeleteAttachment: %v", err)
	}
	if len(m.Minutes.Attachments) != 0 {
		t.Fatalf("attachment not removed")
	}
	if _, err := f.svc.DeleteAttachment(ctx, f.users["u8"], "m5", att.ID); !errors.Is(err, usecaseErrors.ErrAttachmentNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestParticipants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.users["u1"]

	m, err := f.svc.AddParticipant(ctx, admin, "m2", "u20")
	if err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if !m.HasParticipant("u20") || len(m.Participants) != 4 {
		t.Fatalf("participant not added")
	}
	m, err = f.svc.AddParticipant(ctx, admin, "m2", "u20")
	if err != nil || len(m.Participants) != 4 {
		t.Fatalf("second add should be a no-op: %v %d", err, len(m.Participants))
	}
	if _, err := f.svc.AddParticipant(ctx, admin, "m2", "u404"); !errors.Is(err, usecaseErrors.ErrInvalidParticipant) {
		t.Fatalf("unknown user: got %v", err)
	}

	m, err = f.svc.RemoveParticipant(ctx, admin, "m2", "u5")
	if err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	if m.HasParticipant("u5") {
		t.Fatalf("participant not removed")
	}
	stored, _ := f.meetings.FindByID(ctx, "m2")
	if stored.HasParticipant("u5") || !stored.HasParticipant("u20") {
		t.Fatalf("participant changes not stored")
	}
}
