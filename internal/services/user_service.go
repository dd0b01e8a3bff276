package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sekolahku/user-service/internal/dto"
	"github.com/sekolahku/user-service/internal/models"
	"gorm.io/gorm"
)

// UserProfileService is the persistence adapter for user profiles. The
// gorm.DeletedAt scope keeps every query here restricted to live records,
// so soft-deleted profiles are indistinguishable from absent ones.
type UserProfileService struct {
	db *gorm.DB
}

func NewUserProfileService(db *gorm.DB) *UserProfileService {
	return &UserProfileService{db: db}
}

// FindAll returns a window of live profiles ordered by name, plus the total
// count of live profiles matching the same filter. An empty search applies
// no filter beyond liveness.
func (s *UserProfileService) FindAll(offset, limit int, search string) ([]models.UserProfile, int64, error) {
	query := s.db.Model(&models.UserProfile{})

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(username) LIKE ? OR LOWER(nip) LIKE ?",
			term, term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.UserProfile
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (s *UserProfileService) FindByUserID(userID string) (*models.UserProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new live profile. userId uniqueness is checked against
// live and soft-deleted rows alike.
func (s *UserProfileService) Create(req dto.CreateUserProfileRequest, createdBy string) (*models.UserProfile, error) {
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Unscoped().Model(&models.UserProfile{}).Where("user_id = ?", uid).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateUserID
	}

	profile := models.UserProfile{
		UserID:   uid,
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Nip:      req.Nip,
		Phone:    req.Phone,

		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
		BirthDate:    parseDate(req.BirthDate),
		BirthPlace:   req.BirthPlace,
		Gender:       (*models.Gender)(req.Gender),
		Religion:     (*models.Religion)(req.Religion),
		EmployeeType: (*models.EmployeeType)(req.EmployeeType),
		Department:   req.Department,
		Position:     req.Position,
		JoinDate:     parseDate(req.JoinDate),
		PhotoURL:     req.PhotoURL,
		MobilePhone:  req.MobilePhone,

		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,

		IsActive:  true,
		CreatedBy: createdBy,
	}

	if err := s.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUserID
		}
		return nil, err
	}
	return &profile, nil
}

// Update merges the supplied fields into the live profile identified by
// userID and stamps updatedBy/updatedAt.
func (s *UserProfileService) Update(userID string, req dto.UpdateUserProfileRequest, updatedBy string) (*models.UserProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{
		"updated_by": updatedBy,
		"updated_at": time.Now(),
	}
	setString(updates, "name", req.Name)
	setString(updates, "phone", req.Phone)
	setString(updates, "mobile_phone", req.MobilePhone)
	setString(updates, "address", req.Address)
	setString(updates, "city", req.City)
	setString(updates, "province", req.Province)
	setString(updates, "photo_url", req.PhotoURL)
	setString(updates, "emergency_contact_name", req.EmergencyContactName)
	setString(updates, "emergency_contact_phone", req.EmergencyContactPhone)
	setString(updates, "emergency_contact_relation", req.EmergencyContactRelation)

	result := s.db.Model(&models.UserProfile{}).Where("user_id = ?", uid).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.FindByUserID(userID)
}

// SoftDelete marks the live profile dead. The row is never removed; it only
// stops being visible to the other operations.
func (s *UserProfileService) SoftDelete(userID, deletedBy string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}

	result := s.db.Model(&models.UserProfile{}).Where("user_id = ?", uid).Updates(map[string]interface{}{
		"deleted_at": time.Now(),
		"is_active":  false,
		"deleted_by": deletedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
