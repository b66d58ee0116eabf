package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	serviceRepo "meetly/database/repository/service"
	"meetly/models"
	"meetly/utils"

	"github.com/google/uuid"
)

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) Find(_ context.Context) ([]models.Service, error) { return nil, nil }

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, s *models.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) DeleteByBusinessID(_ context.Context, businessID string) error {
	for id, s := range f.services {
		if s.BusinessID == businessID {
			delete(f.services, id)
		}
	}
	return nil
}

type recordingScheduler struct {
	deletedServiceIDs []string
}

func (s *recordingScheduler) Get(_ context.Context) ([]models.Meeting, error) { return nil, nil }
func (s *recordingScheduler) GetByID(_ context.Context, _ string) (*models.Meeting, error) {
	return nil, utils.ErrNotFound("")
}
func (s *recordingScheduler) GetByBusinessID(_ context.Context, _ string) ([]models.Meeting, error) {
	return nil, nil
}
func (s *recordingScheduler) GetByServiceID(_ context.Context, _ string) ([]models.Meeting, error) {
	return nil, nil
}
func (s *recordingScheduler) Create(_ context.Context, _ string, _ time.Time, _ string) (*models.MeetingResponse, error) {
	return nil, utils.ErrInternal()
}
func (s *recordingScheduler) Update(_ context.Context, _ string, _ time.Time) (*models.MeetingResponse, error) {
	return nil, utils.ErrInternal()
}
func (s *recordingScheduler) Delete(_ context.Context, _ string) error { return nil }
func (s *recordingScheduler) DeleteByServiceID(_ context.Context, serviceID string) error {
	s.deletedServiceIDs = append(s.deletedServiceIDs, serviceID)
	return nil
}
func (s *recordingScheduler) DeleteByBusinessID(_ context.Context, _ string) error { return nil }

func TestGetByID(t *testing.T) {
	id := uuid.New().String()
	repo := &fakeServiceRepo{services: map[string]*models.Service{
		id: {ID: id, Name: "Haircut", TimeInMinutes: 30, BusinessID: uuid.New().String()},
	}}
	svc := &DefaultCatalogService{Repo: repo, Scheduler: &recordingScheduler{}}

	got, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TimeInMinutes != 30 {
		t.Fatalf("expected duration 30, got %d", got.TimeInMinutes)
	}

	_, err = svc.GetByID(context.Background(), uuid.New().String())
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Status != 404 {
		t.Fatalf("expected 404 for unknown service, got %v", err)
	}
}

func TestDelete_CascadesToMeetings(t *testing.T) {
	id := uuid.New().String()
	repo := &fakeServiceRepo{services: map[string]*models.Service{
		id: {ID: id, BusinessID: uuid.New().String()},
	}}
	sched := &recordingScheduler{}
	svc := &DefaultCatalogService{Repo: repo, Scheduler: sched}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.services[id]; ok {
		t.Fatal("service not deleted")
	}
	if len(sched.deletedServiceIDs) != 1 || sched.deletedServiceIDs[0] != id {
		t.Fatalf("expected meeting cascade for %s, got %v", id, sched.deletedServiceIDs)
	}
}
