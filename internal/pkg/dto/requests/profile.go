package requests

type UpdateProfile struct {
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

type UpdateProfessionalProfile struct {
	Name    string      `json:"name,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Bio     string      `json:"bio,omitempty"`
	Diploma *FileUpload `json:"-"`
}
