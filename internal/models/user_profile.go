package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Religion string

const (
	ReligionIslam    Religion = "ISLAM"
	ReligionKristen  Religion = "KRISTEN"
	ReligionKatolik  Religion = "KATOLIK"
	ReligionHindu    Religion = "HINDU"
	ReligionBuddha   Religion = "BUDDHA"
	ReligionKonghucu Religion = "KONGHUCU"
)

type EmployeeType string

const (
	EmployeePNS     EmployeeType = "PNS"
	EmployeePPPK    EmployeeType = "PPPK"
	EmployeeGTT     EmployeeType = "GTT"
	EmployeePTT     EmployeeType = "PTT"
	EmployeeHonorer EmployeeType = "HONORER"
)

// UserProfile is the sole resource of this service. UserID is the external
// identity issued by the upstream auth service; all lookups go through it,
// never through the internal primary key.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_profiles_user_id" json:"userId"`

	Username string  `gorm:"size:50;not null" json:"username"`
	Email    string  `gorm:"size:255;not null" json:"email"`
	Name     string  `gorm:"size:100;not null;index" json:"name"`
	Nip      *string `gorm:"size:18" json:"nip"`
	Phone    *string `gorm:"size:20" json:"phone"`

	Address      *string       `gorm:"size:500" json:"address"`
	City         *string       `gorm:"size:100" json:"city"`
	Province     *string       `gorm:"size:100" json:"province"`
	BirthDate    *time.Time    `gorm:"type:date" json:"birthDate"`
	BirthPlace   *string       `gorm:"size:100" json:"birthPlace"`
	Gender       *Gender       `gorm:"type:varchar(10)" json:"gender"`
	Religion     *Religion     `gorm:"type:varchar(20)" json:"religion"`
	EmployeeType *EmployeeType `gorm:"type:varchar(10)" json:"employeeType"`
	Department   *string       `gorm:"size:100" json:"department"`
	Position     *string       `gorm:"size:100" json:"position"`
	JoinDate     *time.Time    `gorm:"type:date" json:"joinDate"`
	PhotoURL     *string       `gorm:"size:255" json:"photoUrl"`
	MobilePhone  *string       `gorm:"size:20" json:"mobilePhone"`

	EmergencyContactName     *string `gorm:"size:100" json:"emergencyContactName"`
	EmergencyContactPhone    *string `gorm:"size:20" json:"emergencyContactPhone"`
	EmergencyContactRelation *string `gorm:"size:50" json:"emergencyContactRelation"`

	IsActive  bool    `gorm:"not null;default:true" json:"isActive"`
	CreatedBy string  `gorm:"size:100;not null;default:'SYSTEM'" json:"createdBy"`
	UpdatedBy *string `gorm:"size:100" json:"updatedBy"`
	DeletedBy *string `gorm:"size:100" json:"deletedBy"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// BeforeCreate assigns the primary key. Generating it application-side
// keeps the schema portable across drivers.
func (p *UserProfile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
