package entity

// CityInput carries the fields of a create or update request. On update,
// empty Name/Phone and a nil Image mean the field was not supplied.
type CityInput struct {
	Name  string
	Phone string
	Image *StagedFile
}
