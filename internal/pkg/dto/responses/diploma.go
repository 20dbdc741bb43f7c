package responses

type Diploma struct {
	ProfessionalID int64  `json:"professional_id"`
	Filename       string `json:"filename"`
	ContentType    string `json:"content_type"`
	Content        []byte `json:"-"`
}

type ArchivedDiploma struct {
	ProfessionalID int64  `json:"professional_id"`
	Bucket         string `json:"bucket"`
	ObjectName     string `json:"object_name"`
	Size           int64  `json:"size"`
}
