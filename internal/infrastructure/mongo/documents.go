package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyDocument es el esquema de la colección de encuestas en MongoDB.
// globalScore es puntero: los registros anteriores al puntaje global no
// traen el campo y el tablero les aplica el fallback de presentación.
type SurveyDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Store        string             `bson:"store"`
	Tiempo       string             `bson:"tiempo"`
	Presentacion int                `bson:"presentacion"`
	Calidad      string             `bson:"calidad"`
	Confirmacion bool               `bson:"confirmacion"`
	GlobalScore  *float64           `bson:"globalScore,omitempty"`
	Status       string             `bson:"status"`
	ClientName   string             `bson:"clientName"`
	DaysProcess  int                `bson:"daysProcess"`
	Timestamp    time.Time          `bson:"timestamp"`
}

// UserDocument es el esquema de cuentas del personal.
type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash []byte             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}
