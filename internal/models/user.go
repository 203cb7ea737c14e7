package models

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`

	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Username  string `json:"username,omitempty" bson:"username,omitempty"`

	// Tags de preferencia declaradas (p.ej. cocinas favoritas). Solo
	// informativas: el motor trabaja con ratings y atributos.
	PreferredCuisines []string `json:"preferredCuisines,omitempty" bson:"preferredCuisines,omitempty"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}
