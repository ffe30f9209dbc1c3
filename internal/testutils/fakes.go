package testutils

import (
	"sort"
	"time"

	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository implementations for unit tests. They mirror the
// ordering and not-found behavior of the GORM repositories.

// FakeUserRepo is an in-memory UserRepositoryInterface
type FakeUserRepo struct {
	Users map[uuid.UUID]*models.User

	// FailCreate forces Create to return this error when set
	FailCreate error
}

// NewFakeUserRepo creates an empty fake user repository
func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{Users: make(map[uuid.UUID]*models.User)}
}

// Seed stores a user directly
func (r *FakeUserRepo) Seed(user *models.User) *models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.Users[user.ID] = user
	return user
}

func (r *FakeUserRepo) Create(user *models.User) error {
	if r.FailCreate != nil {
		return r.FailCreate
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.Users[user.ID] = user
	return nil
}

func (r *FakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	user, ok := r.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *FakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FakeUserRepo) GetByRoles(roles []models.Role) ([]models.User, error) {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	var users []models.User
	for _, user := range r.Users {
		if _, ok := allowed[user.Role]; ok {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].FullName < users[j].FullName })
	return users, nil
}

func (r *FakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.Users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// FakeTaskRepo is an in-memory TaskRepositoryInterface
type FakeTaskRepo struct {
	Tasks map[uuid.UUID]*models.Task
	Order []uuid.UUID

	// Resolve lets GetAllWithAssignees attach assignees, mimicking Preload
	Resolve *FakeUserRepo
}

// NewFakeTaskRepo creates an empty fake task repository
func NewFakeTaskRepo(users *FakeUserRepo) *FakeTaskRepo {
	return &FakeTaskRepo{Tasks: make(map[uuid.UUID]*models.Task), Resolve: users}
}

func (r *FakeTaskRepo) Create(task *models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.Tasks[task.ID] = task
	r.Order = append(r.Order, task.ID)
	return nil
}

func (r *FakeTaskRepo) GetByID(id uuid.UUID) (*models.Task, error) {
	task, ok := r.Tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (r *FakeTaskRepo) GetByAssigneeID(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	for _, id := range r.Order {
		if r.Tasks[id].AssignedToID == userID {
			tasks = append(tasks, *r.Tasks[id])
		}
	}
	return tasks, nil
}

func (r *FakeTaskRepo) GetByAssigneeIDPaged(userID uuid.UUID, limit, offset int) ([]models.Task, int64, error) {
	all, _ := r.GetByAssigneeID(userID)
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Task{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *FakeTaskRepo) GetByCreatorID(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	for _, id := range r.Order {
		if r.Tasks[id].CreatedByID == userID {
			tasks = append(tasks, *r.Tasks[id])
		}
	}
	return tasks, nil
}

func (r *FakeTaskRepo) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	for _, id := range r.Order {
		tasks = append(tasks, *r.Tasks[id])
	}
	return tasks, nil
}

func (r *FakeTaskRepo) GetAllWithAssignees() ([]models.Task, error) {
	var tasks []models.Task
	for _, id := range r.Order {
		task := *r.Tasks[id]
		if r.Resolve != nil {
			if assignee, ok := r.Resolve.Users[task.AssignedToID]; ok {
				task.AssignedTo = assignee
			}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *FakeTaskRepo) Update(task *models.Task) error {
	task.UpdatedAt = time.Now()
	r.Tasks[task.ID] = task
	return nil
}

func (r *FakeTaskRepo) Delete(id uuid.UUID) error {
	delete(r.Tasks, id)
	for i, existing := range r.Order {
		if existing == id {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			break
		}
	}
	return nil
}

// FakeTeamRepo is an in-memory TeamRepositoryInterface
type FakeTeamRepo struct {
	Teams map[uuid.UUID]*models.Team

	// Resolve lets GetAllWithLeads attach leads, mimicking Preload
	Resolve *FakeUserRepo
}

// NewFakeTeamRepo creates an empty fake team repository
func NewFakeTeamRepo(users *FakeUserRepo) *FakeTeamRepo {
	return &FakeTeamRepo{Teams: make(map[uuid.UUID]*models.Team), Resolve: users}
}

func (r *FakeTeamRepo) Create(team *models.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt
	r.Teams[team.ID] = team
	return nil
}

func (r *FakeTeamRepo) GetByID(id uuid.UUID) (*models.Team, error) {
	team, ok := r.Teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return team, nil
}

func (r *FakeTeamRepo) GetByLeadID(leadID uuid.UUID) (*models.Team, error) {
	for _, team := range r.Teams {
		if team.LeadID == leadID {
			return team, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FakeTeamRepo) GetAllWithLeads() ([]models.Team, error) {
	var teams []models.Team
	for _, team := range r.Teams {
		copied := *team
		if r.Resolve != nil {
			if lead, ok := r.Resolve.Users[copied.LeadID]; ok {
				copied.Lead = lead
			}
		}
		teams = append(teams, copied)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].CreatedAt.Before(teams[j].CreatedAt) })
	return teams, nil
}

// FakeTeamMemberRepo is an in-memory TeamMemberRepositoryInterface
type FakeTeamMemberRepo struct {
	Members []*models.TeamMember

	// Resolve lets GetByTeamID attach users, mimicking Preload
	Resolve *FakeUserRepo
}

// NewFakeTeamMemberRepo creates an empty fake team member repository
func NewFakeTeamMemberRepo(users *FakeUserRepo) *FakeTeamMemberRepo {
	return &FakeTeamMemberRepo{Resolve: users}
}

func (r *FakeTeamMemberRepo) Create(member *models.TeamMember) error {
	member.CreatedAt = time.Now()
	r.Members = append(r.Members, member)
	return nil
}

func (r *FakeTeamMemberRepo) GetByUserID(userID uuid.UUID) (*models.TeamMember, error) {
	for _, member := range r.Members {
		if member.UserID == userID {
			return member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FakeTeamMemberRepo) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	for _, member := range r.Members {
		if member.TeamID == teamID {
			copied := *member
			if r.Resolve != nil {
				if user, ok := r.Resolve.Users[copied.UserID]; ok {
					copied.User = user
				}
			}
			members = append(members, copied)
		}
	}
	return members, nil
}

// FakeNotificationRepo is an in-memory NotificationRepositoryInterface
type FakeNotificationRepo struct {
	Notifications []*models.Notification

	// FailCreate forces Create to return this error when set
	FailCreate error
}

// NewFakeNotificationRepo creates an empty fake notification repository
func NewFakeNotificationRepo() *FakeNotificationRepo {
	return &FakeNotificationRepo{}
}

func (r *FakeNotificationRepo) Create(notification *models.Notification) error {
	if r.FailCreate != nil {
		return r.FailCreate
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	r.Notifications = append(r.Notifications, notification)
	return nil
}

func (r *FakeNotificationRepo) GetByUserID(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	for _, n := range r.Notifications {
		if n.UserID == userID {
			notifications = append(notifications, *n)
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *FakeNotificationRepo) CountUnreadByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *FakeNotificationRepo) MarkAllReadByUserID(userID uuid.UUID) error {
	for _, n := range r.Notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

// ForUser returns the stored notifications for a user without copying
func (r *FakeNotificationRepo) ForUser(userID uuid.UUID) []*models.Notification {
	var notifications []*models.Notification
	for _, n := range r.Notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications
}
