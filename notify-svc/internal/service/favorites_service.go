package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"eatery-blue/internal/domain"
	"eatery-blue/internal/storage"
	"eatery-blue/notify-svc/internal/push"

	"go.uber.org/zap"
)

const notificationTitle = "Some of your favorites are being served today!"

type FavoritesRepository interface {
	ServedItems(ctx context.Context, window domain.TimeWindow) (map[string][]string, error)
	ListNotifiableUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type Report struct {
	UsersScanned int `json:"users_scanned"`
	Notified     int `json:"notified"`
	Failed       int `json:"failed"`
}

// FavoritesService tells users which of their favorite items are served
// today. Each user gets at most one notification per run.
type FavoritesService struct {
	repo   FavoritesRepository
	sender push.Sender
	logger *zap.Logger
	now    func() time.Time
}

func NewFavoritesService(repo FavoritesRepository, sender push.Sender, logger *zap.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, sender: sender, logger: logger, now: time.Now}
}

func (s *FavoritesService) WithClock(now func() time.Time) *FavoritesService {
	s.now = now
	return s
}

// Run notifies every user that has favorites and a device token.
func (s *FavoritesService) Run(ctx context.Context) (Report, error) {
	users, err := s.repo.ListNotifiableUsers(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list users: %w", err)
	}
	return s.notify(ctx, users)
}

// RunForUser is the single-user test send.
func (s *FavoritesService) RunForUser(ctx context.Context, id int64) (Report, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return Report{}, err
	}
	return s.notify(ctx, []domain.User{*user})
}

// RunScheduled is the cron entry point.
func (s *FavoritesService) RunScheduled(ctx context.Context) {
	if _, err := s.Run(ctx); err != nil {
		s.logger.Error("favorites run failed", zap.Error(err))
	}
}

func (s *FavoritesService) notify(ctx context.Context, users []domain.User) (Report, error) {
	var report Report
	served, err := s.repo.ServedItems(ctx, domain.Today(s.now()))
	if err != nil {
		return report, fmt.Errorf("failed to load today's items: %w", err)
	}

	for _, user := range users {
		report.UsersScanned++
		if user.FCMToken == "" {
			continue
		}
		matches := Match(user.FavoriteItems, served)
		if len(matches) == 0 {
			continue
		}

		msg, err := BuildMessage(user.FCMToken, matches)
		if err != nil {
			report.Failed++
			s.logger.Error("failed to build notification", zap.Int64("user_id", user.ID), zap.Error(err))
			continue
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			report.Failed++
			s.logger.Warn("failed to send notification", zap.Int64("user_id", user.ID), zap.Error(err))
			continue
		}
		report.Notified++
	}

	s.logger.Info("favorites run finished",
		zap.Int("users_scanned", report.UsersScanned),
		zap.Int("notified", report.Notified),
		zap.Int("failed", report.Failed))
	return report, nil
}

// Match intersects favorites with what each eatery serves. Eateries with no
// match are left out; matched item names are sorted.
func Match(favorites []string, served map[string][]string) map[string][]string {
	if len(favorites) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(favorites))
	for _, f := range favorites {
		want[f] = struct{}{}
	}

	matches := make(map[string][]string)
	for eatery, items := range served {
		seen := make(map[string]struct{})
		for _, item := range items {
			if _, ok := want[item]; !ok {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			matches[eatery] = append(matches[eatery], item)
		}
		sort.Strings(matches[eatery])
	}
	return matches
}

// BuildMessage summarizes all matches of one user in a single notification.
func BuildMessage(token string, matches map[string][]string) (push.Message, error) {
	eateries := make([]string, 0, len(matches))
	for name := range matches {
		eateries = append(eateries, name)
	}
	sort.Strings(eateries)

	var body string
	if len(eateries) == 1 {
		name := eateries[0]
		items := matches[name]
		switch len(items) {
		case 1:
			body = fmt.Sprintf("%s is being served at %s today.", items[0], name)
		case 2:
			body = fmt.Sprintf("%s and %s are at %s today.", items[0], items[1], name)
		default:
			body = fmt.Sprintf("Several favorites are at %s today.", name)
		}
	} else {
		body = fmt.Sprintf("Favorites found at %s today. Check the app for details!", strings.Join(eateries, ", "))
	}

	payload, err := json.Marshal(matches)
	if err != nil {
		return push.Message{}, err
	}
	return push.Message{
		Token: token,
		Title: notificationTitle,
		Body:  body,
		Data:  map[string]string{"matches": string(payload)},
	}, nil
}

var _ FavoritesRepository = (*storage.PostgresRepository)(nil)
