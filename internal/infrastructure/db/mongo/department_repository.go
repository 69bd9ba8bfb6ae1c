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

const departmentsCollection = "departamentos"

type DepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{coll: db.Collection(departmentsCollection)}
}

type departmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nombre      string             `bson:"nombre"`
	Descripcion string             `bson:"descripcion,omitempty"`
	Empleados   []string           `bson:"empleados"`
	CreatedAt   time.Time          `bson:"date_create"`
}

func (r *DepartmentRepository) Insert(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDepartmentDoc(d))
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert department: unexpected id type %T", res.InsertedID)
	}

	created := *d
	created.ID = oid.Hex()
	return &created, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc departmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return toDepartment(doc), nil
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cursor.Close(ctx)

	var departments []*domain.Department
	for cursor.Next(ctx) {
		var doc departmentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		departments = append(departments, toDepartment(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id string, d *domain.Department) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toDepartmentDoc(d))
	if err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDepartmentNotFound
	}

	updated := *d
	updated.ID = id
	return &updated, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// AddEmployee appends employeeID to the roster. $addToSet keeps the
// operation idempotent under repeated assignment.
func (r *DepartmentRepository) AddEmployee(ctx context.Context, id, employeeID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$addToSet": bson.M{"empleados": employeeID}})
	if err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func toDepartmentDoc(d *domain.Department) departmentDoc {
	return departmentDoc{
		Nombre:      d.Nombre,
		Descripcion: d.Descripcion,
		Empleados:   d.Empleados,
		CreatedAt:   d.CreatedAt,
	}
}

func toDepartment(doc departmentDoc) *domain.Department {
	empleados := doc.Empleados
	if empleados == nil {
		empleados = []string{}
	}
	return &domain.Department{
		ID:          doc.ID.Hex(),
		Nombre:      doc.Nombre,
		Descripcion: doc.Descripcion,
		Empleados:   empleados,
		CreatedAt:   doc.CreatedAt,
	}
}
