package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

const applicantsCollection = "aspirantes"

type ApplicantRepository struct {
	coll *mongo.Collection
}

func NewApplicantRepository(db *mongo.Database) *ApplicantRepository {
	return &ApplicantRepository{coll: db.Collection(applicantsCollection)}
}

type applicantDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Nombre          string             `bson:"nombre"`
	Identificacion  string             `bson:"identificacion"`
	TipoCafe        string             `bson:"tipo_cafe"`
	Peso            float64            `bson:"peso"`
	Precio          float64            `bson:"precio"`
	PrecioTotal     float64            `bson:"precio_total"`
	Telefono        string             `bson:"telefono"`
	Estado          string             `bson:"estado"`
	EstadoMonetario string             `bson:"estado_monetario"`
	CreatedAt       time.Time          `bson:"date_create"`
}

func (r *ApplicantRepository) Insert(ctx context.Context, a *domain.Applicant) (*domain.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toApplicantDoc(a))
	if err != nil {
		return nil, fmt.Errorf("insert applicant: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert applicant: unexpected id type %T", res.InsertedID)
	}

	created := *a
	created.ID = oid.Hex()
	return &created, nil
}

func (r *ApplicantRepository) FindByID(ctx context.Context, id string) (*domain.Applicant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicantDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", err)
	}
	return toApplicant(doc), nil
}

func (r *ApplicantRepository) FindAll(ctx context.Context) ([]*domain.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer cursor.Close(ctx)

	var applicants []*domain.Applicant
	for cursor.Next(ctx) {
		var doc applicantDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode applicant: %w", err)
		}
		applicants = append(applicants, toApplicant(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return applicants, nil
}

func (r *ApplicantRepository) Update(ctx context.Context, id string, a *domain.Applicant) (*domain.Applicant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toApplicantDoc(a))
	if err != nil {
		return nil, fmt.Errorf("update applicant: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrApplicantNotFound
	}

	updated := *a
	updated.ID = id
	return &updated, nil
}

func (r *ApplicantRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete applicant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicantNotFound
	}
	return nil
}

func toApplicantDoc(a *domain.Applicant) applicantDoc {
	return applicantDoc{
		Nombre:          a.Nombre,
		Identificacion:  a.Identificacion,
		TipoCafe:        a.TipoCafe,
		Peso:            a.Peso,
		Precio:          a.Precio,
		PrecioTotal:     a.PrecioTotal,
		Telefono:        a.Telefono,
		Estado:          a.Estado,
		EstadoMonetario: a.EstadoMonetario,
		CreatedAt:       a.CreatedAt,
	}
}

func toApplicant(doc applicantDoc) *domain.Applicant {
	return &domain.Applicant{
		ID:              doc.ID.Hex(),
		Nombre:          doc.Nombre,
		Identificacion:  doc.Identificacion,
		TipoCafe:        doc.TipoCafe,
		Peso:            doc.Peso,
		Precio:          doc.Precio,
		PrecioTotal:     doc.PrecioTotal,
		Telefono:        doc.Telefono,
		Estado:          doc.Estado,
		EstadoMonetario: doc.EstadoMonetario,
		CreatedAt:       doc.CreatedAt,
	}
}
