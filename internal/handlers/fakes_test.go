package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/Jannadolf/LookNest/internal/models"
	"github.com/Jannadolf/LookNest/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the handler tests.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type edge struct {
	follower  uint
	following uint
}

type fakeFollowRepo struct {
	users         *fakeUserRepo
	edges         map[edge]bool
	notifications []*models.Notification
}

func newFakeFollowRepo(users *fakeUserRepo) *fakeFollowRepo {
	return &fakeFollowRepo{users: users, edges: make(map[edge]bool)}
}

func (r *fakeFollowRepo) CreateFollow(follow *models.Follow, notification *models.Notification) error {
	r.edges[edge{follow.FollowerID, follow.FollowingID}] = true
	if notification != nil {
		r.notifications = append(r.notifications, notification)
	}
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(followerID, followingID uint) error {
	delete(r.edges, edge{followerID, followingID})
	return nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return r.edges[edge{followerID, followingID}], nil
}

func (r *fakeFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	for e := range r.edges {
		if e.following == userID {
			if u, ok := r.users.users[e.follower]; ok {
				users = append(users, *u)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	for e := range r.edges {
		if e.follower == userID {
			if u, ok := r.users.users[e.following]; ok {
				users = append(users, *u)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeFollowRepo) GetFollowersCount(userID uint) (int64, error) {
	users, _ := r.GetFollowers(userID)
	return int64(len(users)), nil
}

func (r *fakeFollowRepo) GetFollowingCount(userID uint) (int64, error) {
	users, _ := r.GetFollowing(userID)
	return int64(len(users)), nil
}

type fakeProfileViewRepo struct {
	views []*models.ProfileView
}

func (r *fakeProfileViewRepo) CreateView(view *models.ProfileView) error {
	copied := *view
	r.views = append(r.views, &copied)
	return nil
}

func (r *fakeProfileViewRepo) HasRecentView(ownerID, viewerID uint, since time.Time) (bool, error) {
	for _, v := range r.views {
		if v.OwnerID == ownerID && v.ViewerID == viewerID && !v.ViewedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileViewRepo) GetViewsByOwner(ownerID uint) ([]models.ProfileView, error) {
	var views []models.ProfileView
	for _, v := range r.views {
		if v.OwnerID == ownerID {
			views = append(views, *v)
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ViewedAt.After(views[j].ViewedAt) })
	return views, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	notification.ID = r.nextID
	r.nextID++
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var all []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			all = append(all, *n)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID, recipientID uint) error {
	for _, n := range r.notifications {
		if n.ID == notificationID && n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

type fakePhotoRepo struct {
	photos []*models.Photo
}

func (r *fakePhotoRepo) CreatePhoto(_ context.Context, photo *models.Photo) error {
	photo.ID = primitive.NewObjectID()
	photo.CreatedAt = time.Now()
	photo.UpdatedAt = time.Now()
	copied := *photo
	r.photos = append(r.photos, &copied)
	return nil
}

func (r *fakePhotoRepo) GetPhotoByID(_ context.Context, id string) (*models.Photo, error) {
	for _, p := range r.photos {
		if p.ID.Hex() == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrPhotoNotFound
}

func (r *fakePhotoRepo) GetPhotosByUserID(_ context.Context, userID uint, skip, limit int64) ([]models.Photo, error) {
	var photos []models.Photo
	for _, p := range r.photos {
		if p.UserID == userID {
			photos = append(photos, *p)
		}
	}
	return photos, nil
}

func (r *fakePhotoRepo) GetAllPhotos(_ context.Context, skip, limit int64) ([]models.Photo, error) {
	var photos []models.Photo
	for _, p := range r.photos {
		photos = append(photos, *p)
	}
	return photos, nil
}

func (r *fakePhotoRepo) GetPhotosByIDs(_ context.Context, ids []string) ([]models.Photo, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var photos []models.Photo
	for _, p := range r.photos {
		if wanted[p.ID.Hex()] {
			photos = append(photos, *p)
		}
	}
	return photos, nil
}

func (r *fakePhotoRepo) DeletePhoto(_ context.Context, id string) error {
	for i, p := range r.photos {
		if p.ID.Hex() == id {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPhotoNotFound
}

type fakeSavedPhotoRepo struct {
	saved []*models.SavedPhoto
}

func (r *fakeSavedPhotoRepo) SavePhoto(savedPhoto *models.SavedPhoto) error {
	copied := *savedPhoto
	r.saved = append(r.saved, &copied)
	return nil
}

func (r *fakeSavedPhotoRepo) UnsavePhoto(userID uint, photoID string) error {
	for i, s := range r.saved {
		if s.UserID == userID && s.PhotoID == photoID {
			r.saved = append(r.saved[:i], r.saved[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSavedPhotoRepo) IsPhotoSaved(userID uint, photoID string) (bool, error) {
	for _, s := range r.saved {
		if s.UserID == userID && s.PhotoID == photoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSavedPhotoRepo) GetSavedPhotosByUser(userID uint) ([]models.SavedPhoto, error) {
	var saved []models.SavedPhoto
	for _, s := range r.saved {
		if s.UserID == userID {
			saved = append(saved, *s)
		}
	}
	return saved, nil
}

type fakePusher struct {
	pushes map[uint][]any
}

func newFakePusher() *fakePusher {
	return &fakePusher{pushes: make(map[uint][]any)}
}

func (p *fakePusher) Push(userID uint, data any) {
	p.pushes[userID] = append(p.pushes[userID], data)
}

// newTestContext builds an echo context around an httptest recorder.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uint) {
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
}
