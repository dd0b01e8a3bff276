package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sekolahku/user-service/internal/dto"
	"github.com/sekolahku/user-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A fresh connection to :memory: is a fresh database; keep the pool at
	// one connection so every query sees the same one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserProfile{}))
	return db
}

func strPtr(s string) *string { return &s }

func newCreateRequest(name, username, email string) dto.CreateUserProfileRequest {
	return dto.CreateUserProfileRequest{
		UserID:   uuid.NewString(),
		Username: username,
		Email:    email,
		Name:     name,
	}
}

func TestCreateStampsAuditFields(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	req.Nip = strPtr("198501152010011001")
	req.Phone = strPtr("081234567890")
	req.Gender = strPtr("MALE")
	req.Religion = strPtr("ISLAM")
	req.EmployeeType = strPtr("PNS")
	req.BirthDate = strPtr("1985-01-15")

	profile, err := svc.Create(req, "admin-123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.Equal(t, req.UserID, profile.UserID.String())
	assert.Equal(t, "admin-123", profile.CreatedBy)
	assert.True(t, profile.IsActive)
	assert.False(t, profile.CreatedAt.IsZero())
	require.NotNil(t, profile.BirthDate)
	assert.Equal(t, "1985-01-15", profile.BirthDate.Format("2006-01-02"))
	require.NotNil(t, profile.Gender)
	assert.Equal(t, models.GenderMale, *profile.Gender)
}

func TestCreateGeneratesDistinctIDs(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	first, err := svc.Create(newCreateRequest("Budi Santoso", "budi", "budi@example.com"), "SYSTEM")
	require.NoError(t, err)
	second, err := svc.Create(newCreateRequest("Andi Wijaya", "andiw", "andi@example.com"), "SYSTEM")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateDuplicateUserID(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	_, err := svc.Create(req, "SYSTEM")
	require.NoError(t, err)

	req.Username = "budi2"
	req.Email = "budi2@example.com"
	_, err = svc.Create(req, "SYSTEM")
	assert.ErrorIs(t, err, ErrDuplicateUserID)
}

func TestCreateDuplicateAgainstSoftDeleted(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	_, err := svc.Create(req, "SYSTEM")
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(req.UserID, "SYSTEM"))

	// userId stays unique across live and dead records.
	_, err = svc.Create(req, "SYSTEM")
	assert.ErrorIs(t, err, ErrDuplicateUserID)
}

func TestFindByUserID(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	created, err := svc.Create(req, "SYSTEM")
	require.NoError(t, err)

	found, err := svc.FindByUserID(req.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.FindByUserID(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	// A malformed id can never match an external identity.
	_, err = svc.FindByUserID("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllOrdersByNameAndWindows(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	for _, name := range []string{"Citra Dewi", "Andi Wijaya", "Budi Santoso"} {
		req := newCreateRequest(name, "user"+uuid.NewString()[:8], uuid.NewString()[:8]+"@example.com")
		_, err := svc.Create(req, "SYSTEM")
		require.NoError(t, err)
	}

	profiles, total, err := svc.FindAll(0, 25, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, profiles, 3)
	assert.Equal(t, "Andi Wijaya", profiles[0].Name)
	assert.Equal(t, "Budi Santoso", profiles[1].Name)
	assert.Equal(t, "Citra Dewi", profiles[2].Name)

	// The window narrows the page, not the total.
	profiles, total, err = svc.FindAll(1, 1, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Budi Santoso", profiles[0].Name)
}

func TestFindAllSearch(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	budi := newCreateRequest("Budi Santoso", "budisan", "budi@example.com")
	budi.Nip = strPtr("198501152010011001")
	_, err := svc.Create(budi, "SYSTEM")
	require.NoError(t, err)

	andi := newCreateRequest("Andi Wijaya", "andiw", "andi@example.com")
	_, err = svc.Create(andi, "SYSTEM")
	require.NoError(t, err)

	// Case-insensitive substring across name, email, username, nip.
	for _, term := range []string{"BUDI", "budi@", "budisan", "20100110"} {
		profiles, total, err := svc.FindAll(0, 25, term)
		require.NoError(t, err, "term %q", term)
		assert.EqualValues(t, 1, total, "term %q", term)
		require.Len(t, profiles, 1, "term %q", term)
		assert.Equal(t, "Budi Santoso", profiles[0].Name, "term %q", term)
	}

	_, total, err := svc.FindAll(0, 25, "nobody")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	_, err := svc.Create(req, "SYSTEM")
	require.NoError(t, err)

	updated, err := svc.Update(req.UserID, dto.UpdateUserProfileRequest{
		Name: strPtr("Budi Hartono"),
		City: strPtr("Bandung"),
	}, "admin-123")
	require.NoError(t, err)

	assert.Equal(t, "Budi Hartono", updated.Name)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Bandung", *updated.City)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "admin-123", *updated.UpdatedBy)
	// Untouched fields survive the merge.
	assert.Equal(t, "budi", updated.Username)
	assert.Equal(t, "budi@example.com", updated.Email)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	_, err := svc.Update(uuid.NewString(), dto.UpdateUserProfileRequest{Name: strPtr("Nobody")}, "SYSTEM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteHidesButKeepsRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserProfileService(db)

	req := newCreateRequest("Budi Santoso", "budi", "budi@example.com")
	created, err := svc.Create(req, "SYSTEM")
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(req.UserID, "admin-123"))

	// Gone for reads and lists...
	_, err = svc.FindByUserID(req.UserID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, total, err := svc.FindAll(0, 25, "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	// ...and for updates and repeat deletes.
	_, err = svc.Update(req.UserID, dto.UpdateUserProfileRequest{Name: strPtr("Ghost Writer")}, "SYSTEM")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.SoftDelete(req.UserID, "admin-123"), ErrNotFound)

	// The row itself is still there.
	var raw models.UserProfile
	require.NoError(t, db.Unscoped().Where("id = ?", created.ID).First(&raw).Error)
	assert.True(t, raw.DeletedAt.Valid)
	assert.False(t, raw.IsActive)
	require.NotNil(t, raw.DeletedBy)
	assert.Equal(t, "admin-123", *raw.DeletedBy)
}

func TestSoftDeleteNotFound(t *testing.T) {
	svc := NewUserProfileService(setupTestDB(t))

	assert.ErrorIs(t, svc.SoftDelete(uuid.NewString(), "SYSTEM"), ErrNotFound)
}
