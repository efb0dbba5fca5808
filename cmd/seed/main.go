package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rewax-co/survey-services/api/internal/config"
	publicdomain "github.com/rewax-co/survey-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type seedOptions struct {
	emailDomain string
	samples     int
	randomSeed  int64
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash []byte             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type surveyDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Store        string             `bson:"store"`
	Tiempo       string             `bson:"tiempo"`
	Presentacion int                `bson:"presentacion"`
	Calidad      string             `bson:"calidad"`
	Confirmacion bool               `bson:"confirmacion"`
	GlobalScore  *float64           `bson:"globalScore,omitempty"`
	Status       string             `bson:"status"`
	ClientName   string             `bson:"clientName,omitempty"`
	DaysProcess  int                `bson:"daysProcess,omitempty"`
	Timestamp    time.Time          `bson:"timestamp"`
}

func main() {
	_ = godotenv.Load()

	opts := parseFlags()
	cfg := config.Load()

	password := strings.TrimSpace(os.Getenv("SEED_STAFF_PASSWORD"))
	if password == "" {
		log.Fatal("define SEED_STAFF_PASSWORD para crear las cuentas del personal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("no se pudo conectar a MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error al desconectar MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	if err := seedUsers(ctx, db.Collection(cfg.UserCollection), cfg.Stores, opts.emailDomain, password); err != nil {
		log.Fatalf("no se pudieron crear las cuentas: %v", err)
	}

	if opts.samples > 0 {
		if err := seedSurveys(ctx, db.Collection(cfg.SurveyCollection), cfg.Stores, opts.samples, opts.randomSeed); err != nil {
			log.Fatalf("no se pudieron crear las encuestas de ejemplo: %v", err)
		}
	}

	log.Println("seed completado")
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.emailDomain, "email-domain", "rewax.co", "dominio para los correos del personal")
	flag.IntVar(&opts.samples, "samples", 0, "cantidad de encuestas de ejemplo a insertar")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "semilla para los datos aleatorios")
	flag.Parse()
	return opts
}

// seedUsers inserta o actualiza las cuentas de tienda y la de gerencia.
// La operación es idempotente: correr el seed dos veces no duplica cuentas.
func seedUsers(ctx context.Context, coll *mongo.Collection, stores []string, domain, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("no se pudo generar el hash de la contraseña: %w", err)
	}

	accounts := append(append([]string(nil), stores...), "gerencia")
	now := time.Now().UTC()

	for _, account := range accounts {
		email := fmt.Sprintf("%s@%s", account, domain)
		filter := bson.M{"email": email}
		update := bson.M{
			"$set": bson.M{
				"passwordHash": hash,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"_id":       primitive.NewObjectID(),
				"email":     email,
				"createdAt": now,
			},
		}
		result, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("no se pudo guardar la cuenta %s: %w", email, err)
		}
		if result.UpsertedCount > 0 {
			log.Printf("cuenta creada: %s", email)
		} else {
			log.Printf("cuenta actualizada: %s", email)
		}
	}

	return nil
}

// seedSurveys inserta encuestas de ejemplo repartidas en los últimos meses.
func seedSurveys(ctx context.Context, coll *mongo.Collection, stores []string, count int, randomSeed int64) error {
	rng := rand.New(rand.NewSource(randomSeed))

	tiempos := []string{publicdomain.TiempoAntes, publicdomain.TiempoJusto, publicdomain.TiempoDemora}
	calidades := []string{publicdomain.CalidadUniforme, publicdomain.CalidadCumple, publicdomain.CalidadNoSatisfecho}

	docs := make([]interface{}, 0, count)
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		answers := publicdomain.Answers{
			Tiempo:       publicdomain.Tiempo(tiempos[rng.Intn(len(tiempos))]),
			Presentacion: publicdomain.Presentacion(1 + rng.Intn(5)),
			Calidad:      publicdomain.Calidad(calidades[rng.Intn(len(calidades))]),
			Confirmacion: true,
		}
		score := publicdomain.Score(answers)

		doc := surveyDocument{
			ID:           primitive.NewObjectID(),
			Store:        stores[rng.Intn(len(stores))],
			Tiempo:       answers.Tiempo.String(),
			Presentacion: answers.Presentacion.Int(),
			Calidad:      answers.Calidad.String(),
			Confirmacion: answers.Confirmacion,
			GlobalScore:  &score,
			Status:       publicdomain.StatusPending,
			Timestamp:    now.AddDate(0, 0, -rng.Intn(90)),
		}

		// Una parte de los registros queda completada para que el tablero
		// tenga datos de días de proceso.
		if rng.Intn(3) == 0 {
			doc.Status = "completed"
			doc.ClientName = fmt.Sprintf("Cliente %03d", i+1)
			doc.DaysProcess = 1 + rng.Intn(14)
		}

		docs = append(docs, doc)
	}

	result, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("no se pudieron insertar las encuestas: %w", err)
	}
	log.Printf("encuestas de ejemplo insertadas: %d", len(result.InsertedIDs))
	return nil
}
