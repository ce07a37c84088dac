package handler

// Wire field names follow the original API contract (Spanish optionals).

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Phone     string `json:"telefono"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registeredUser is the trimmed view returned on registration.
type registeredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"telefono,omitempty"`
	Role     string `json:"role"`
}

type registerResponse struct {
	User  registeredUser `json:"user"`
	Token string         `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// updateUserRequest is the JSON form of a profile patch. Pointers distinguish
// "not sent" from "set to empty". Password and role are not accepted here.
type updateUserRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Email     *string `json:"email"`
	Phone     *string `json:"telefono"`
}

type messageResponse struct {
	Message string `json:"message"`
}
