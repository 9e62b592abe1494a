package presentation

const (
	IDParam   = "id"
	FormName  = "name"
	FormPhone = "phone"
	FormImage = "image"
)
