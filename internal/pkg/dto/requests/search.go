package requests

// ProfessionalSearch holds optional filters; blank fields are left out of
// the query string.
type ProfessionalSearch struct {
	Activity string
	Category string
	Name     string
}
