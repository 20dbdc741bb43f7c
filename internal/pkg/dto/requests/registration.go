package requests

type RegisterPatient struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-"`
	Phone           string `json:"phone,omitempty"`
	DocumentNumber  string `json:"document_number,omitempty"`
	BirthDate       string `json:"birth_date,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
}

// RegisterProfessional is sent as multipart/form-data; the diploma travels
// as a file part next to the profile fields.
type RegisterProfessional struct {
	Name            string                      `json:"name" validate:"required"`
	Email           string                      `json:"email" validate:"required,email"`
	Password        string                      `json:"password" validate:"required,min=6"`
	ConfirmPassword string                      `json:"-"`
	Phone           string                      `json:"phone,omitempty"`
	DocumentNumber  string                      `json:"document_number" validate:"required"`
	Bio             string                      `json:"bio,omitempty"`
	Activities      []ProfessionalActivityOffer `json:"activities" validate:"dive"`
	Diploma         *FileUpload                 `json:"diploma" validate:"required"`
}

type ProfessionalActivityOffer struct {
	ActivityID      int64   `json:"activity_id" validate:"required,gt=0"`
	Description     string  `json:"description,omitempty"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type FileUpload struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type,omitempty"`
	Content     []byte `json:"-" validate:"required"`
}
