package usecasecontract

// IValidator validates caller-supplied values ahead of store writes.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
	ValidateHexColor(color string) error
}
