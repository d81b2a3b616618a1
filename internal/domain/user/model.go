package user

// User is a registered identity, keyed by normalized CPF.
// JSON tags match the persisted layout of the `users` collection.
type User struct {
	CPF          string `json:"cpf"`
	PasswordHash string `json:"senha"`
	Name         string `json:"nome,omitempty"`
}

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Name            string
	CPF             string
	Password        string
	PasswordConfirm string
}
