package models

import "net/url"

// APICall names a route from the route table and carries everything needed
// to fill it in. At most one of JSON and Form is set.
type APICall struct {
	Operation  string
	PathParams []string
	Query      url.Values
	JSON       interface{}
	Form       *MultipartForm
}

type RawResponse struct {
	StatusCode  int
	ContentType string
	Filename    string
	Body        []byte
}

// MultipartForm keeps fields in insertion order; repeated names such as
// activities[] are sent as separate parts.
type MultipartForm struct {
	Fields []FormField
	Files  []FormFile
}

type FormField struct {
	Name  string
	Value string
}

type FormFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Content     []byte
}

func (f *MultipartForm) Add(name, value string) {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
}

// AddIfPresent skips blank values so optional profile fields are left out.
func (f *MultipartForm) AddIfPresent(name, value string) {
	if value != "" {
		f.Add(name, value)
	}
}

func (f *MultipartForm) AttachFile(fieldName, filename, contentType string, content []byte) {
	f.Files = append(f.Files, FormFile{
		FieldName:   fieldName,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})
}
