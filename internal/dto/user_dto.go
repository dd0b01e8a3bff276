package dto

// CreateUserProfileRequest mirrors the create payload. userId comes from the
// upstream identity service; the extended fields are optional.
type CreateUserProfileRequest struct {
	UserID   string  `json:"userId" validate:"required,uuid"`
	Username string  `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,min=3,max=100"`
	Nip      *string `json:"nip" validate:"omitempty,len=18"`
	Phone    *string `json:"phone" validate:"omitempty,idphone"`

	Address      *string `json:"address" validate:"omitempty,max=500"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	Province     *string `json:"province" validate:"omitempty,max=100"`
	BirthDate    *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	BirthPlace   *string `json:"birthPlace" validate:"omitempty,max=100"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Religion     *string `json:"religion" validate:"omitempty,oneof=ISLAM KRISTEN KATOLIK HINDU BUDDHA KONGHUCU"`
	EmployeeType *string `json:"employeeType" validate:"omitempty,oneof=PNS PPPK GTT PTT HONORER"`
	Department   *string `json:"department" validate:"omitempty,max=100"`
	Position     *string `json:"position" validate:"omitempty,max=100"`
	JoinDate     *string `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	PhotoURL     *string `json:"photoUrl" validate:"omitempty,url,max=255"`
	MobilePhone  *string `json:"mobilePhone" validate:"omitempty,idphone"`

	EmergencyContactName     *string `json:"emergencyContactName" validate:"omitempty,max=100"`
	EmergencyContactPhone    *string `json:"emergencyContactPhone" validate:"omitempty,idphone"`
	EmergencyContactRelation *string `json:"emergencyContactRelation" validate:"omitempty,max=50"`
}

// UpdateUserProfileRequest enumerates exactly the mutable fields. Identity
// fields (userId, username, email) are not updatable; submitting them fails
// the strict body decode.
type UpdateUserProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,idphone"`
	MobilePhone *string `json:"mobilePhone" validate:"omitempty,idphone"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Province    *string `json:"province" validate:"omitempty,max=100"`
	PhotoURL    *string `json:"photoUrl" validate:"omitempty,url,max=255"`

	EmergencyContactName     *string `json:"emergencyContactName" validate:"omitempty,max=100"`
	EmergencyContactPhone    *string `json:"emergencyContactPhone" validate:"omitempty,idphone"`
	EmergencyContactRelation *string `json:"emergencyContactRelation" validate:"omitempty,max=50"`
}
