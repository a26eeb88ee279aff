package repositories

import (
	"errors"
	"testing"
)

func TestStaffRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	id, err := repo.CreateStaff(db, "priya", "hash-one")
	if err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if id == 0 {
		t.Error("CreateStaff() returned id 0")
	}

	got, err := repo.FindByUsername("priya")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if got.ID != id || got.Username != "priya" || got.PasswordHash != "hash-one" {
		t.Errorf("FindByUsername() = %+v", got)
	}
}

func TestStaffRepositoryFindMissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	if _, err := repo.FindByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByUsername(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestStaffRepositoryUsernameIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	if _, err := repo.CreateStaff(db, "Priya", "hash"); err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if _, err := repo.FindByUsername("priya"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByUsername(lowercase) error = %v, want ErrNotFound for a differently-cased name", err)
	}
}

func TestStaffRepositoryDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	if _, err := repo.CreateStaff(db, "priya", "original-hash"); err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}

	_, err := repo.CreateStaff(db, "priya", "other-hash")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("CreateStaff() duplicate error = %v, want ErrDuplicateKey", err)
	}

	// The existing account's credential is untouched by the failed insert.
	got, err := repo.FindByUsername("priya")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if got.PasswordHash != "original-hash" {
		t.Errorf("PasswordHash = %q after duplicate insert, want original-hash", got.PasswordHash)
	}
}

func TestStaffRepositoryUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	if _, err := repo.CreateStaff(db, "priya", "old-hash"); err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if err := repo.UpdatePassword(db, "priya", "new-hash"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	got, err := repo.FindByUsername("priya")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if got.PasswordHash != "new-hash" {
		t.Errorf("PasswordHash = %q, want new-hash", got.PasswordHash)
	}
}

func TestStaffRepositoryUpdatePasswordUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	if err := repo.UpdatePassword(db, "ghost", "hash"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePassword(ghost) error = %v, want ErrNotFound", err)
	}
}
