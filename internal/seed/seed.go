// Package seed loads the built-in user directory and meetings.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

//go:embed data.yaml
var defaultData []byte

type document struct {
	Users    []userRecord    `yaml:"users"`
	Meetings []meetingRecord `yaml:"meetings"`
}

type userRecord struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Email    string            `yaml:"email"`
	Password string            `yaml:"password"`
	Role     entities.UserRole `yaml:"role"`
	Avatar   string            `yaml:"avatar"`
}

type meetingRecord struct {
	ID             string                 `yaml:"id"`
	Title          string                 `yaml:"title"`
	Agenda         string                 `yaml:"agenda"`
	Date           string                 `yaml:"date"`
	DateOffsetDays *int                   `yaml:"date_offset_days"`
	StartTime      string                 `yaml:"start_time"`
	EndTime        string                 `yaml:"end_time"`
	Location       string                 `yaml:"location"`
	Participants   []string               `yaml:"participants"`
	Notulis        string                 `yaml:"notulis"`
	CreatedBy      string                 `yaml:"created_by"`
	Status         entities.MeetingStatus `yaml:"status"`
	Minutes        *minutesRecord         `yaml:"minutes"`
}

type minutesRecord struct {
	Summary     string                `yaml:"summary"`
	ActionItems []actionItemRecord    `yaml:"action_items"`
	Attachments []entities.Attachment `yaml:"attachments"`
}

type actionItemRecord struct {
	ID       string                    `yaml:"id"`
	Task     string                    `yaml:"task"`
	PIC      string                    `yaml:"pic"`
	Deadline string                    `yaml:"deadline"`
	Status   entities.ActionItemStatus `yaml:"status"`
}

// Dataset is the resolved seed: users carry password hashes, meetings carry full user records
type Dataset struct {
	Users    []*entities.User
	Meetings []*entities.Meeting
}

// Options controls how the seed is materialised
type Options struct {
	// BcryptCost is the cost used to hash seed passwords. Zero means bcrypt.DefaultCost.
	BcryptCost int
	// Now anchors relative meeting dates. Zero means time.Now().
	Now time.Time
}

// Load parses the built-in seed
func Load(opts Options) (*Dataset, error) {
	return Parse(defaultData, opts)
}

// Parse resolves a seed document
func Parse(data []byte, opts Options) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	users, err := resolveUsers(doc.Users, opts.BcryptCost)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	meetings := make([]*entities.Meeting, 0, len(doc.Meetings))
	for _, rec := range doc.Meetings {
		m, err := resolveMeeting(rec, byID, opts.Now)
		if err != nil {
			return nil, fmt.Errorf("meeting %s: %w", rec.ID, err)
		}
		meetings = append(meetings, m)
	}

	return &Dataset{Users: users, Meetings: meetings}, nil
}

func resolveUsers(records []userRecord, cost int) ([]*entities.User, error) {
	hashes := map[string]string{}
	users := make([]*entities.User, 0, len(records))
	seen := map[string]bool{}
	for _, rec := range records {
		if seen[rec.ID] {
			return nil, fmt.Errorf("duplicate user id %s", rec.ID)
		}
		seen[rec.ID] = true

		hash, ok := hashes[rec.Password]
		if !ok {
			b, err := bcrypt.GenerateFromPassword([]byte(rec.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password for %s: %w", rec.ID, err)
			}
			hash = string(b)
			hashes[rec.Password] = hash
		}

		u := &entities.User{
			ID:           rec.ID,
			Name:         rec.Name,
			Email:        rec.Email,
			Role:         rec.Role,
			Avatar:       rec.Avatar,
			PasswordHash: hash,
		}
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("user %s: %w", rec.ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func resolveMeeting(rec meetingRecord, users map[string]*entities.User, now time.Time) (*entities.Meeting, error) {
	lookup := func(id string) (entities.User, error) {
		u, ok := users[id]
		if !ok {
			return entities.User{}, fmt.Errorf("unknown user %q: %w", id, entities.ErrUserNotFound)
		}
		return *u, nil
	}

	m := &entities.Meeting{
		ID:        rec.ID,
		Title:     rec.Title,
		Agenda:    rec.Agenda,
		Date:      rec.Date,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		Location:  rec.Location,
		Status:    rec.Status,
	}
	if rec.DateOffsetDays != nil {
		m.Date = now.AddDate(0, 0, *rec.DateOffsetDays).Format(entities.DateLayout)
	}

	var err error
	if m.Notulis, err = lookup(rec.Notulis); err != nil {
		return nil, err
	}
	if m.CreatedBy, err = lookup(rec.CreatedBy); err != nil {
		return nil, err
	}
	m.Participants = make([]entities.User, 0, len(rec.Participants))
	for _, id := range rec.Participants {
		u, err := lookup(id)
		if err != nil {
			return nil, err
		}
		m.Participants = append(m.Participants, u)
	}

	if rec.Minutes != nil {
		mins := m.EnsureMinutes()
		mins.Summary = rec.Minutes.Summary
		for _, a := range rec.Minutes.ActionItems {
			pic, err := lookup(a.PIC)
			if err != nil {
				return nil, err
			}
			mins.ActionItems = append(mins.ActionItems, entities.ActionItem{
				ID:       a.ID,
				Task:     a.Task,
				PIC:      pic,
				Deadline: a.Deadline,
				Status:   a.Status,
			})
		}
		mins.Attachments = append(mins.Attachments, rec.Minutes.Attachments...)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
