package domain

// Messages holds the user-visible error message templates. Like the
// validation bounds, every template has a compiled-in default and may be
// overridden from configuration.
type Messages struct {
	InvalidCredentials  string
	AlreadyAdopted      string
	CannotDeleteAdopted string
	DuplicatePetName    string
	DuplicateUsername   string
	DuplicateEmail      string
	InvalidToken        string
}

// DefaultMessages returns the compiled-in message templates.
func DefaultMessages() Messages {
	return Messages{
		InvalidCredentials:  "Invalid username or password",
		AlreadyAdopted:      "Pet is already adopted",
		CannotDeleteAdopted: "Cannot delete an adopted pet",
		DuplicatePetName:    "A pet with this name already exists",
		DuplicateUsername:   "Username is already taken",
		DuplicateEmail:      "Email is already registered",
		InvalidToken:        "Invalid or expired token",
	}
}
