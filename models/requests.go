package models

// RegisterRequest carries the registration form. Password strength and
// email format are validated here, upstream of the repositories.
type RegisterRequest struct {
	Name            string `json:"nombre" validate:"required,min=2,max=100"`
	BirthDate       string `json:"fechaNacimiento" validate:"required,birthdate"`
	Email           string `json:"email" validate:"required,email"`
	University      string `json:"universidad" validate:"required,max=150"`
	Password        string `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	UserType        string `json:"tipoUsuario" validate:"required,usertype"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"nuevaPassword" validate:"required,strongpassword"`
}

type PublishOfferRequest struct {
	Subject     string `json:"materia" validate:"required,max=100"`
	Category    string `json:"categoria" validate:"required,max=60"`
	Level       string `json:"nivel" validate:"required,level"`
	Description string `json:"descripcion" validate:"required,max=1000"`
	Price       string `json:"precio" validate:"required,max=20"`
	Modality    string `json:"modalidad" validate:"required,modality"`
	Duration    string `json:"duracion" validate:"required,max=30"`
	Location    string `json:"ubicacion" validate:"max=150"`
}

type UpdateProfileRequest struct {
	Name      string `json:"nombre" validate:"required,min=2,max=100"`
	BirthDate string `json:"fechaNacimiento" validate:"omitempty,birthdate"`
	Alias     string `json:"alias" validate:"max=50"`
	Photo     string `json:"foto" validate:"max=500"`
}

type ChangeUserTypeRequest struct {
	UserType string `json:"tipoUsuario" validate:"required,usertype"`
}

type SendMessageRequest struct {
	RecipientID int64  `json:"recipient_id" validate:"required,gt=0"`
	Text        string `json:"texto" validate:"required,max=2000"`
}

type ScheduleSessionRequest struct {
	OfferID     int64  `json:"offer_id" validate:"required,gt=0"`
	ScheduledAt string `json:"fecha" validate:"required"`
}
