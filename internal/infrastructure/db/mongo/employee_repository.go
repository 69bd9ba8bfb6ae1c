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

const employeesCollection = "empleados"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeesCollection)}
}

type employeeDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Nombre          string             `bson:"nombre"`
	Identificacion  string             `bson:"identificacion"`
	TipoCafe        string             `bson:"tipo_cafe"`
	Peso            float64            `bson:"peso"`
	Precio          float64            `bson:"precio"`
	Telefono        string             `bson:"telefono"`
	Estado          string             `bson:"estado"`
	EstadoMonetario string             `bson:"estado_monetario"`
	DepartmentID    string             `bson:"department_id,omitempty"`
	CreatedAt       time.Time          `bson:"date_create"`
}

func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toEmployeeDoc(e))
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert employee: unexpected id type %T", res.InsertedID)
	}

	created := *e
	created.ID = oid.Hex()
	return &created, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employeeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return toEmployee(doc), nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []*domain.Employee
	for cursor.Next(ctx) {
		var doc employeeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, toEmployee(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, e *domain.Employee) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toEmployeeDoc(e))
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	updated := *e
	updated.ID = id
	return &updated, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) SetDepartment(ctx context.Context, id, departmentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"department_id": departmentID}})
	if err != nil {
		return fmt.Errorf("set department: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func toEmployeeDoc(e *domain.Employee) employeeDoc {
	return employeeDoc{
		Nombre:          e.Nombre,
		Identificacion:  e.Identificacion,
		TipoCafe:        e.TipoCafe,
		Peso:            e.Peso,
		Precio:          e.Precio,
		Telefono:        e.Telefono,
		Estado:          e.Estado,
		EstadoMonetario: e.EstadoMonetario,
		DepartmentID:    e.DepartmentID,
		CreatedAt:       e.CreatedAt,
	}
}

func toEmployee(doc employeeDoc) *domain.Employee {
	return &domain.Employee{
		ID:              doc.ID.Hex(),
		Nombre:          doc.Nombre,
		Identificacion:  doc.Identificacion,
		TipoCafe:        doc.TipoCafe,
		Peso:            doc.Peso,
		Precio:          doc.Precio,
		Telefono:        doc.Telefono,
		Estado:          doc.Estado,
		EstadoMonetario: doc.EstadoMonetario,
		DepartmentID:    doc.DepartmentID,
		CreatedAt:       doc.CreatedAt,
	}
}
