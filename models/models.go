package models

import "time"

// User types. "ambos" can both enroll in offers and publish them.
const (
	UserTypeStudent = "estudiante"
	UserTypeTutor   = "tutor"
	UserTypeBoth    = "ambos"
)

// Offer modalities as shown in the mobile client.
const (
	ModalityOnline   = "En línea"
	ModalityInPerson = "Presencial"
)

// Scheduled session states.
const (
	SessionPending   = "pendiente"
	SessionConfirmed = "confirmada"
	SessionCancelled = "cancelada"
)

type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	BirthDate  string    `json:"fechaNacimiento,omitempty"`
	Email      string    `json:"email"`
	University string    `json:"universidad"`
	Password   string    `json:"-"`
	UserType   string    `json:"tipoUsuario"`
	Alias      string    `json:"alias,omitempty"`
	Photo      string    `json:"foto,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Offer is a tutoring listing published by a tutor-capable user.
// TutorName is copied from the owner at publish time and may go stale
// if the owner later renames themselves.
type Offer struct {
	ID          int64     `json:"id"`
	TutorID     int64     `json:"tutor_id"`
	Subject     string    `json:"materia"`
	Category    string    `json:"categoria"`
	Level       string    `json:"nivel"`
	Description string    `json:"descripcion"`
	Price       string    `json:"precio"`
	Modality    string    `json:"modalidad"`
	Duration    string    `json:"duracion"`
	Location    string    `json:"ubicacion,omitempty"`
	TutorName   string    `json:"tutorNombre"`
	CreatedAt   time.Time `json:"created_at"`
}

type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	OfferID   int64     `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrolledOffer is the enrollment list view: the enrollment row joined
// with its offer.
type EnrolledOffer struct {
	EnrollmentID int64     `json:"enrollment_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	Offer        Offer     `json:"tutoria"`
}

type SavedOffer struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	OfferID   int64     `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedOfferView is the bookmark list view: the bookmark row joined
// with its offer.
type SavedOfferView struct {
	SavedID int64     `json:"saved_id"`
	SavedAt time.Time `json:"saved_at"`
	Offer   Offer     `json:"tutoria"`
}

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"titulo"`
	Body      string    `json:"mensaje"`
	Read      bool      `json:"leida"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"accion"`
	Detail    string    `json:"detalle"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Text        string    `json:"texto"`
	Read        bool      `json:"leido"`
	CreatedAt   time.Time `json:"created_at"`
}

// TutoringSession is a scheduled session between a student and an offer.
type TutoringSession struct {
	ID          int64     `json:"id"`
	OfferID     int64     `json:"offer_id"`
	StudentID   int64     `json:"student_id"`
	ScheduledAt time.Time `json:"fecha"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is an authenticated client session. It holds a snapshot of the
// user row taken at login; profile updates replace the snapshot.
type Session struct {
	ID         string    `json:"id"`
	User       User      `json:"user"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}
