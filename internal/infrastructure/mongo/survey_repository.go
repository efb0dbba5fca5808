package mongo

import (
	"context"
	"strings"

	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	publicdomain "github.com/rewax-co/survey-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SurveyRepository persiste encuestas para ambos contextos: alta anónima del
// flujo público y lectura/cierre del tablero administrativo.
type SurveyRepository struct {
	surveys *mongo.Collection
}

// NewSurveyRepository binds the repository to its collection.
func NewSurveyRepository(db *mongo.Database, surveyCollection string) *SurveyRepository {
	return &SurveyRepository{surveys: db.Collection(surveyCollection)}
}

// Create inserta un registro recién enviado y le asigna su ObjectID.
func (r *SurveyRepository) Create(ctx context.Context, survey *publicdomain.Survey) error {
	doc := SurveyDocument{
		ID:           primitive.NewObjectID(),
		Store:        survey.Store,
		Tiempo:       survey.Answers.Tiempo.String(),
		Presentacion: survey.Answers.Presentacion.Int(),
		Calidad:      survey.Answers.Calidad.String(),
		Confirmacion: survey.Answers.Confirmacion,
		GlobalScore:  &survey.GlobalScore,
		Status:       survey.Status,
		ClientName:   "",
		DaysProcess:  0,
		Timestamp:    survey.CreatedAt,
	}

	if _, err := r.surveys.InsertOne(ctx, doc); err != nil {
		return err
	}
	survey.ID = doc.ID.Hex()
	return nil
}

// Find devuelve todos los registros en orden descendente por timestamp; el
// tablero deriva la lista de meses de ese orden.
func (r *SurveyRepository) Find(ctx context.Context) ([]admindomain.Survey, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.surveys.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := make([]admindomain.Survey, 0)
	for cursor.Next(ctx) {
		var doc SurveyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		surveys = append(surveys, mapSurveyDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return surveys, nil
}

// FindByID recupera un registro puntual para el detalle del tablero.
func (r *SurveyRepository) FindByID(ctx context.Context, id string) (*admindomain.Survey, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var doc SurveyDocument
	if err := r.surveys.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	survey := mapSurveyDocument(doc)
	return &survey, nil
}

// Complete aplica la transición pending→completed en una sola escritura. El
// filtro exige status pending: si otra sesión cerró el registro primero, la
// actualización no matchea y se reporta el conflicto en vez de pisar datos.
func (r *SurveyRepository) Complete(ctx context.Context, id string, completion admindomain.Completion) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return mongo.ErrNoDocuments
	}

	filter := bson.M{"_id": objectID, "status": string(admindomain.StatusPending)}
	update := bson.M{"$set": bson.M{
		"clientName":  completion.ClientName,
		"daysProcess": completion.DaysProcess,
		"status":      string(admindomain.StatusCompleted),
	}}

	result, err := r.surveys.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		count, err := r.surveys.CountDocuments(ctx, bson.M{"_id": objectID})
		if err != nil {
			return err
		}
		if count == 0 {
			return mongo.ErrNoDocuments
		}
		return admindomain.ErrAlreadyCompleted
	}
	return nil
}

func mapSurveyDocument(doc SurveyDocument) admindomain.Survey {
	return admindomain.Survey{
		ID:           doc.ID.Hex(),
		Store:        doc.Store,
		Tiempo:       doc.Tiempo,
		Presentacion: doc.Presentacion,
		Calidad:      doc.Calidad,
		Confirmacion: doc.Confirmacion,
		GlobalScore:  doc.GlobalScore,
		Status:       admindomain.Status(doc.Status),
		ClientName:   doc.ClientName,
		DaysProcess:  doc.DaysProcess,
		CreatedAt:    doc.Timestamp,
	}
}
