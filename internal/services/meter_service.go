package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/internal/storage"
	"gms-backend/internal/timeutil"

	"github.com/google/uuid"
)

// MaxImageSize is the ceiling for uploaded meter images.
const MaxImageSize = 2 * 1024 * 1024

// ErrImageTooLarge is returned verbatim to the client as a field error.
var ErrImageTooLarge = errors.New("Image size must be less than 2MB")

type MeterService struct {
	Repo    *repositories.MeterRepository
	LogRepo *repositories.MeterLogRepository
	Store   *storage.ObjectStore
}

func NewMeterService(repo *repositories.MeterRepository, logRepo *repositories.MeterLogRepository, store *storage.ObjectStore) *MeterService {
	return &MeterService{Repo: repo, LogRepo: logRepo, Store: store}
}

func (s *MeterService) CreateMeter(ctx context.Context, req *models.CreateMeterRequest) (*models.Meter, error) {
	installedOn := timeutil.Now()
	if req.InstalledOn != "" {
		t, err := timeutil.ParseInIST(timeutil.DateLayout, req.InstalledOn)
		if err != nil {
			return nil, fmt.Errorf("invalid installed_on date: %w", err)
		}
		installedOn = t
	}

	meter := &models.Meter{
		FlatID:       req.FlatID,
		ProjectID:    req.ProjectID,
		SerialNumber: req.SerialNumber,
		InstalledOn:  installedOn,
	}

	if err := s.Repo.Create(ctx, meter); err != nil {
		return nil, err
	}
	return meter, nil
}

func (s *MeterService) GetMeter(ctx context.Context, id int) (*models.Meter, error) {
	return s.Repo.Get(ctx, id)
}

func (s *MeterService) GetMeterByFlat(ctx context.Context, flatID int) (*models.Meter, error) {
	return s.Repo.GetByFlat(ctx, flatID)
}

func (s *MeterService) ListMeters(ctx context.Context) ([]*models.Meter, error) {
	return s.Repo.List(ctx)
}

func (s *MeterService) ListByProject(ctx context.Context, projectID int) ([]*models.Meter, error) {
	return s.Repo.ListByProject(ctx, projectID)
}

func (s *MeterService) UpdateMeter(ctx context.Context, id int, req *models.UpdateMeterRequest) (*models.Meter, error) {
	meter, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	meter.SerialNumber = req.SerialNumber
	if req.IsActive != nil {
		meter.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(ctx, meter); err != nil {
		return nil, err
	}
	return meter, nil
}

func (s *MeterService) DeleteMeter(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// RecordReading creates a meter log. The previous reading is the latest valid
// log's current reading (zero for a fresh meter); units consumed are computed
// here, never trusted from the client. A reading below the previous one is
// kept but marked INVALID so it can be reviewed without feeding an invoice.
func (s *MeterService) RecordReading(ctx context.Context, req *models.CreateMeterLogRequest, image []byte, imageType string) (*models.MeterLog, error) {
	meter, err := s.Repo.Get(ctx, req.MeterID)
	if err != nil {
		return nil, errors.New("meter not found")
	}

	previous := 0.0
	if latest, err := s.LogRepo.GetLatestByMeter(ctx, meter.ID); err == nil {
		previous = latest.CurrentReading
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	status := models.MeterLogValid
	units := req.CurrentReading - previous
	if units < 0 {
		status = models.MeterLogInvalid
		units = 0
	}

	imageKey := ""
	if len(image) > 0 {
		if len(image) > MaxImageSize {
			return nil, ErrImageTooLarge
		}
		imageKey = fmt.Sprintf("meter-images/%d/%s", meter.ID, uuid.NewString())
		if err := s.Store.Put(ctx, imageKey, imageType, image); err != nil {
			return nil, err
		}
	}

	log := &models.MeterLog{
		MeterID:         meter.ID,
		AgentID:         req.AgentID,
		PreviousReading: previous,
		CurrentReading:  req.CurrentReading,
		UnitsConsumed:   units,
		ImageKey:        imageKey,
		Status:          status,
		ReadAt:          timeutil.Now(),
	}

	if err := s.LogRepo.Create(ctx, log); err != nil {
		return nil, discardImage(ctx, s.Store, imageKey, err)
	}
	return log, nil
}

// objectDeleter is the slice of the object store needed for cleanup.
type objectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// discardImage removes an uploaded image whose reading failed to persist and
// returns the original cause. A failed delete is reported alongside it.
func discardImage(ctx context.Context, store objectDeleter, key string, cause error) error {
	if key == "" {
		return cause
	}
	if delErr := store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("%w (image %s not cleaned up: %v)", cause, key, delErr)
	}
	return cause
}

func (s *MeterService) GetReading(ctx context.Context, id int) (*models.MeterLog, error) {
	return s.LogRepo.Get(ctx, id)
}

func (s *MeterService) ListReadings(ctx context.Context) ([]*models.MeterLog, error) {
	return s.LogRepo.List(ctx)
}

func (s *MeterService) ListReadingsByMeter(ctx context.Context, meterID int) ([]*models.MeterLog, error) {
	return s.LogRepo.ListByMeter(ctx, meterID)
}

// ReadingImage fetches the stored meter image for a log.
func (s *MeterService) ReadingImage(ctx context.Context, id int) ([]byte, error) {
	log, err := s.LogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if log.ImageKey == "" {
		return nil, errors.New("no image for this reading")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return s.Store.Get(ctx, log.ImageKey)
}

func (s *MeterService) MarkReadingStatus(ctx context.Context, id int, status string) (*models.MeterLog, error) {
	if err := s.LogRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.LogRepo.Get(ctx, id)
}

func (s *MeterService) DeleteReading(ctx context.Context, id int) error {
	return s.LogRepo.Delete(ctx, id)
}

// ComputeUnits is the reading arithmetic shared with invoice generation.
func ComputeUnits(previous, current float64) (units float64, valid bool) {
	units = current - previous
	if units < 0 {
		return 0, false
	}
	return units, true
}
