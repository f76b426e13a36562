package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"registration/src/core/domain"
)

// FileRepository implements UserRepository on a JSON file holding the array
// of stored users. The file is read on every call so records appended by
// another writer, or edited by hand, are visible; writes are serialized by
// this process only.
type FileRepository struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileRepository returns a store backed by path. The file is created on
// the first Append.
func NewFileRepository(path string, log *slog.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

// fileRecord is the on-disk shape of a user.
type fileRecord struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Birth      string `json:"birth"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func toRecord(u domain.User) fileRecord {
	rec := fileRecord{
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		PostalCode: u.PostalCode,
		City:       u.City,
	}
	if u.ID != uuid.Nil {
		rec.ID = u.ID.String()
	}
	if !u.Birth.IsZero() {
		rec.Birth = u.Birth.Format(domain.BirthLayout)
	}
	if !u.CreatedAt.IsZero() {
		rec.CreatedAt = u.CreatedAt.Format(time.RFC3339Nano)
	}
	return rec
}

// toUser is lenient: records written by older clients may lack an ID or
// carry a full timestamp as birth. Unparseable values are left zero.
func (rec fileRecord) toUser() domain.User {
	u := domain.User{
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Email:      rec.Email,
		PostalCode: rec.PostalCode,
		City:       rec.City,
	}
	if id, err := uuid.Parse(rec.ID); err == nil {
		u.ID = id
	}
	if t, err := time.Parse(domain.BirthLayout, rec.Birth); err == nil {
		u.Birth = t
	} else if t, err := time.Parse(time.RFC3339Nano, rec.Birth); err == nil {
		u.Birth = t
	}
	if t, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
		u.CreatedAt = t
	}
	return u
}

func (r *FileRepository) Health(context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return domain.NewUnavailableError(err.Error())
	}
	if !info.IsDir() {
		return domain.NewUnavailableError(dir + " is not a directory")
	}
	return nil
}

func (r *FileRepository) Append(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	stored, err := prepare(u, users)
	if err != nil {
		return nil, err
	}

	if err := r.save(append(users, stored)); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *FileRepository) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	return find(users, id)
}

func (r *FileRepository) List(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *FileRepository) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// load reads the whole list. A missing or empty file is an empty list.
func (r *FileRepository) load() ([]domain.User, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode user store %s: %w", r.path, err)
	}

	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toUser())
	}
	return users, nil
}

// save replaces the file atomically.
func (r *FileRepository) save(users []domain.User) error {
	records := make([]fileRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toRecord(u))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write user store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace user store: %w", err)
	}

	if r.log != nil {
		r.log.Debug("user store written", "path", r.path, "count", len(users))
	}
	return nil
}
